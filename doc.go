// Package platformkit is the Go client SDK for the shared multi-tenant
// platform: authentication, users, roles and permissions, tenants,
// teams, invitations, notifications, feature flags, and audit logging.
//
// The SDK splits into two layers:
//
//   - pkg/... holds the local building blocks: wildcard permission
//     matching (pkg/permissions), the role registry and resolver
//     (pkg/rbac), per-request authorization contexts (pkg/authctx),
//     JWT handling (pkg/jwt), and the shared HTTP core (pkg/apiclient).
//   - svc/... holds the typed clients for the platform services, all
//     sharing one apiclient.Client and therefore one bearer token.
//
// Basic Usage:
//
//	api := apiclient.New("https://api.example.com")
//	authClient := auth.NewClient(api)
//
//	tokens, err := authClient.Login(ctx, "user@example.com", "password")
//	if err != nil {
//		return err
//	}
//
//	// Client-side authorization decisions from the access token.
//	user, err := authClient.UserContext(tokens.AccessToken)
//	if err != nil {
//		return err
//	}
//	if user.HasPermission("reports:create") {
//		// render the button; the server still enforces on write
//	}
//
// Every service client maps HTTP errors onto apiclient's sentinel
// taxonomy plus its own domain sentinels, so callers branch with
// errors.Is rather than status codes.
package platformkit
