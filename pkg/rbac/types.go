package rbac

import "github.com/platformkit/platformkit/pkg/permissions"

// MaxInheritanceDepth is the maximum allowed depth of role inheritance
// to prevent excessive nesting and potential performance issues.
const MaxInheritanceDepth = 10

// Role is a named bundle of directly granted permissions with optional
// inheritance. Roles form a DAG through Inherits; the full permission
// set of a role (its closure) is computed by a Resolver.
type Role struct {
	// Permissions directly granted to this role, as resource:action
	// strings with optional wildcard segments.
	Permissions []string `yaml:"permissions"`

	// Inherits lists role names this role inherits from.
	// All permissions from inherited roles are included in the closure.
	Inherits []string `yaml:"inherits,omitempty"`
}

// Can checks if the role has the specified permission directly.
// This does not check inherited permissions.
func (r *Role) Can(permission string) bool {
	return permissions.Has(r.Permissions, permission)
}

func (r Role) clone() Role {
	permsCopy := make([]string, len(r.Permissions))
	copy(permsCopy, r.Permissions)

	inheritsCopy := make([]string, len(r.Inherits))
	copy(inheritsCopy, r.Inherits)

	return Role{Permissions: permsCopy, Inherits: inheritsCopy}
}
