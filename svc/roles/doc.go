// Package roles is the typed client for the platform role service: role
// CRUD, user role assignment, and server-side permission checks.
//
// For local permission matching over an already-decoded token, use
// pkg/authctx and pkg/rbac instead; this client is the authoritative
// server-side path.
package roles
