// Package auth is the typed client for the platform authentication
// service: password and refresh-token grants, token revocation and
// introspection, session management, and OAuth provider adapters.
//
// Login and RefreshToken install the returned access token on the shared
// API client, so subsequent calls through any service client are
// authenticated automatically.
package auth
