// Package tenants is the typed client for the platform tenant service:
// tenant CRUD and lifecycle, SSO configuration management, and the
// department hierarchy within a tenant.
package tenants
