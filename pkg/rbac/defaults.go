package rbac

// Built-in role names used by the platform.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleUser       = "user"
	RoleGuest      = "guest"
)

// DefaultRoles returns the platform's built-in role table. Each role
// inherits from the next one down the chain:
//
//	super_admin -> admin -> manager -> user -> guest
//
// The table is seed data: callers may extend a registry built from it via
// Register, or replace it entirely with an external RoleSource.
func DefaultRoles() map[string]Role {
	return map[string]Role{
		RoleSuperAdmin: {
			Permissions: []string{"*"},
			Inherits:    []string{RoleAdmin},
		},
		RoleAdmin: {
			Permissions: []string{
				"users:*",
				"settings:*",
				"audit:read",
				"reports:*",
			},
			Inherits: []string{RoleManager},
		},
		RoleManager: {
			Permissions: []string{
				"users:read",
				"users:create",
				"users:update",
				"team:*",
				"reports:read",
				"reports:create",
			},
			Inherits: []string{RoleUser},
		},
		RoleUser: {
			Permissions: []string{
				"profile:*",
				"notifications:*",
				"resources:read",
				"resources:create",
			},
			Inherits: []string{RoleGuest},
		},
		RoleGuest: {
			Permissions: []string{
				"profile:read",
				"resources:read",
			},
		},
	}
}

// DefaultRegistry builds a registry from DefaultRoles. The built-in table
// is acyclic, so construction cannot fail.
func DefaultRegistry() *Registry {
	registry, err := NewRegistry(DefaultRoles())
	if err != nil {
		panic("rbac: built-in role table failed validation: " + err.Error())
	}
	return registry
}
