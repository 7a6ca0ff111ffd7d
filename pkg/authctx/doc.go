// Package authctx models the authenticated principal of a single request
// as an immutable value built from validated token claims.
//
// A Context carries the subject's identity (user id, email, name, tenant,
// session) together with its authorization material: role names, explicit
// permissions, and token scopes. Query methods answer permission and role
// questions on top of the permissions matcher and the rbac resolver; all
// of them are pure, side-effect-free, and fail closed on malformed data.
//
//	ac, err := authctx.FromClaims(map[string]any{
//	    "sub":       "user-123",
//	    "roles":     []string{"manager"},
//	    "tenant_id": "tenant-456",
//	})
//	if err != nil {
//	    // authentication failure, surface as 401
//	}
//
//	ac.HasPermission("users:create") // true via manager's direct grant
//	ac.HasRole("user")               // false: no inheritance of identity
//	ac.IsAdmin()                     // false
//
// Role closures come from the built-in platform role table by default;
// WithResolver binds a context to another registry, e.g. per-tenant role
// sets.
//
// The package also ships HTTP guards (Middleware, RequireAuth,
// RequirePermission, RequireRole) that put a Context on the request and
// enforce checks in front of handlers.
package authctx
