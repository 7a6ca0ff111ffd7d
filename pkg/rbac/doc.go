// Package rbac provides role-based access control for the platform.
// It pairs a validated role registry with a memoizing resolver that
// computes each role's full permission closure, including inherited
// permissions.
//
// Key concepts:
//
//   - Role: a named set of resource:action permissions that can inherit
//     from other roles
//   - Registry: the validated role table; cycles and excessive depth are
//     rejected at construction and registration time, never at query time
//   - Resolver: computes and memoizes permission closures; unknown roles
//     resolve to empty closures so authorization fails closed
//
// Basic usage:
//
//	registry := rbac.DefaultRegistry()
//	resolver := rbac.NewResolver(registry)
//
//	// Full closure for a role, inherited permissions included
//	perms := resolver.Resolve("admin")
//
//	// Permission checks
//	if err := resolver.Can("manager", "users:create"); err != nil {
//	    // Handle permission denied
//	}
//
//	// Runtime extension, validated atomically
//	err := registry.Register("billing_admin", rbac.Role{
//	    Permissions: []string{"billing:*"},
//	    Inherits:    []string{"manager"},
//	})
//
// The built-in table (DefaultRoles) follows the platform convention of a
// single-parent chain super_admin -> admin -> manager -> user -> guest.
// External tables can be supplied through a RoleSource; an in-memory
// source and a YAML file source are included.
package rbac
