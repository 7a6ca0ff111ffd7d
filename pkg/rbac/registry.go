package rbac

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Registry is the process-wide mapping from role name to its definition.
//
// In the steady state it is populated once before query traffic begins and
// never changes. Runtime extension is supported through Register, which
// validates the new role under an exclusive lock so concurrent readers
// never observe the table mid-mutation.
type Registry struct {
	mu         sync.RWMutex
	roles      map[string]Role
	generation uint64
}

// NewRegistry builds a validated registry from a role table. It fails if
// the inheritance graph contains a cycle or exceeds MaxInheritanceDepth.
func NewRegistry(roles map[string]Role) (*Registry, error) {
	if roles == nil {
		roles = make(map[string]Role)
	}

	rolesCopy := make(map[string]Role, len(roles))
	for name, role := range roles {
		rolesCopy[name] = role.clone()
	}

	if err := validateInheritance(rolesCopy); err != nil {
		return nil, err
	}

	return &Registry{roles: rolesCopy}, nil
}

// NewRegistryFromSource loads the role table from a RoleSource and
// validates it.
func NewRegistryFromSource(ctx context.Context, source RoleSource) (*Registry, error) {
	roles, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewRegistry(roles)
}

// Register adds a role to the registry at runtime.
//
// It fails with ErrRoleExists for a duplicate name and with
// ErrCircularInheritance when the new edges would create a cycle or push
// the graph past MaxInheritanceDepth. Failure is atomic: the registry is
// left exactly as it was.
func (r *Registry) Register(name string, role Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.roles[name]; exists {
		return errors.Join(ErrRoleExists, fmt.Errorf("role %q already registered", name))
	}

	// Validate against a candidate table so a rejected role leaves the
	// live table untouched.
	candidate := make(map[string]Role, len(r.roles)+1)
	for n, def := range r.roles {
		candidate[n] = def
	}
	candidate[name] = role.clone()

	if err := validateInheritance(candidate); err != nil {
		return err
	}

	r.roles = candidate
	r.generation++
	return nil
}

// Get looks up a role definition by name. Absence is a valid outcome
// (callers may hold stale or externally sourced role names), not an error.
func (r *Registry) Get(name string) (Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.roles[name]
	if !ok {
		return Role{}, false
	}
	return role.clone(), true
}

// Roles returns all role names sorted by inheritance depth, base roles first.
func (r *Registry) Roles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortRolesByInheritance(r.roles)
}

// Generation returns a counter that changes on every successful Register.
// Resolvers use it to detect that memoized closures have gone stale.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// snapshot returns the live table for read-only traversal along with its
// generation. Callers must not mutate the returned map.
func (r *Registry) snapshot() (map[string]Role, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roles, r.generation
}

// sortRolesByInheritance returns role names sorted by inheritance depth.
func sortRolesByInheritance(roles map[string]Role) []string {
	depths := make(map[string]int)
	visited := make(map[string]bool)

	for name := range roles {
		if !visited[name] {
			calculateRoleDepth(name, roles, depths, visited, make(map[string]bool))
		}
	}

	result := make([]string, 0, len(roles))
	for name := range roles {
		result = append(result, name)
	}

	slices.SortFunc(result, func(a, b string) int {
		if d := depths[a] - depths[b]; d != 0 {
			return d
		}
		// Stable order for roles at the same depth.
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})

	return result
}

// calculateRoleDepth computes the inheritance depth of a role using DFS.
func calculateRoleDepth(name string, roles map[string]Role, depths map[string]int, visited, inProcess map[string]bool) int {
	if visited[name] {
		return depths[name]
	}

	if inProcess[name] {
		return 0 // Circular dependency detected
	}

	inProcess[name] = true
	defer func() {
		visited[name] = true
		inProcess[name] = false
	}()

	role, exists := roles[name]
	if !exists || len(role.Inherits) == 0 {
		depths[name] = 0
		return 0
	}

	maxDepth := 0
	for _, parent := range role.Inherits {
		depth := calculateRoleDepth(parent, roles, depths, visited, inProcess) + 1
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	depths[name] = maxDepth
	return maxDepth
}

// validateInheritance checks for circular dependencies and excessive depth
// in the role inheritance graph.
func validateInheritance(roles map[string]Role) error {
	for name := range roles {
		if err := checkCircularInheritance(name, roles, []string{name}); err != nil {
			return err
		}
	}

	depths := make(map[string]int)
	visited := make(map[string]bool)
	for name := range roles {
		if !visited[name] {
			depth := calculateRoleDepth(name, roles, depths, visited, make(map[string]bool))
			if depth > MaxInheritanceDepth {
				return errors.Join(ErrCircularInheritance,
					fmt.Errorf("inheritance depth exceeds maximum allowed depth of %d", MaxInheritanceDepth))
			}
		}
	}

	return nil
}

// checkCircularInheritance performs DFS to detect circular dependencies in
// role inheritance.
func checkCircularInheritance(name string, roles map[string]Role, path []string) error {
	role, exists := roles[name]
	if !exists {
		return nil
	}

	for _, parent := range role.Inherits {
		if slices.Contains(path, parent) {
			return errors.Join(ErrCircularInheritance,
				fmt.Errorf("circular inheritance detected: %s -> %s", name, parent))
		}

		if err := checkCircularInheritance(parent, roles, append(path, parent)); err != nil {
			return err
		}
	}

	return nil
}
