package tenants

import "errors"

var (
	// ErrTenantNotFound is returned when the requested tenant does not
	// exist.
	ErrTenantNotFound = errors.New("tenants: tenant not found")

	// ErrDepartmentNotFound is returned when the requested department
	// does not exist.
	ErrDepartmentNotFound = errors.New("tenants: department not found")

	// ErrSSONotConfigured is returned when a tenant has no SSO
	// configuration.
	ErrSSONotConfigured = errors.New("tenants: sso not configured")
)
