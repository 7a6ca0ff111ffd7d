// Package users is the typed client for the platform user management
// service: CRUD over user accounts, role and status administration, and
// self-service profile and preference operations for the current user.
package users
