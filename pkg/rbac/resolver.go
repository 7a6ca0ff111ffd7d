package rbac

import (
	"sync"

	"github.com/platformkit/platformkit/pkg/permissions"
)

// Resolver computes the transitive permission closure of a role: its direct
// permissions plus the closure of every ancestor. Closures are memoized per
// role name; the memo table is dropped wholesale whenever the underlying
// registry changes, so multiple registries (e.g. per-tenant role sets) can
// each own a resolver without cross-contamination.
type Resolver struct {
	registry *Registry

	mu         sync.RWMutex
	memo       map[string][]string
	generation uint64
}

// NewResolver creates a resolver bound to the given registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{
		registry: registry,
		memo:     make(map[string][]string),
	}
}

// Resolve returns the normalized permission closure for a role. The
// returned slice is a copy, detached from the memo table; callers may
// mutate it freely.
//
// An unknown role resolves to an empty closure, never an error: callers may
// hold stale or externally sourced role names and authorization must fail
// closed (deny) on bad data rather than throw.
func (r *Resolver) Resolve(name string) []string {
	roles, generation := r.registry.snapshot()

	r.mu.RLock()
	if r.generation == generation {
		if closure, ok := r.memo[name]; ok {
			r.mu.RUnlock()
			return cloneClosure(closure)
		}
	}
	r.mu.RUnlock()

	closure := permissions.Normalize(collectPermissions(name, roles, make(map[string]bool), 0))
	if closure == nil {
		closure = []string{}
	}

	r.mu.Lock()
	if r.generation != generation {
		// Registry changed since our last fill; drop everything memoized
		// against the old table.
		r.memo = make(map[string][]string)
		r.generation = generation
	}
	r.memo[name] = closure
	r.mu.Unlock()

	return cloneClosure(closure)
}

// cloneClosure detaches a memoized closure from the cache, the same way
// Registry.Get hands out role copies.
func cloneClosure(closure []string) []string {
	out := make([]string, len(closure))
	copy(out, closure)
	return out
}

// Can checks if a role has the specified permission, direct or inherited.
// Returns ErrInsufficientPermissions when it does not; unknown roles have
// empty closures and therefore always fail the check.
func (r *Resolver) Can(roleName, permission string) error {
	if !permissions.Has(r.Resolve(roleName), permission) {
		return ErrInsufficientPermissions
	}
	return nil
}

// CanAny checks if a role has any of the provided permissions.
func (r *Resolver) CanAny(roleName string, perms ...string) error {
	if !permissions.HasAny(r.Resolve(roleName), perms) {
		return ErrInsufficientPermissions
	}
	return nil
}

// CanAll checks if a role has all of the provided permissions.
func (r *Resolver) CanAll(roleName string, perms ...string) error {
	if !permissions.HasAll(r.Resolve(roleName), perms) {
		return ErrInsufficientPermissions
	}
	return nil
}

// collectPermissions recursively gathers direct and inherited permissions
// for a role. Cycles are excluded by the registry invariant; the visited
// set and depth guard keep traversal bounded regardless.
func collectPermissions(name string, roles map[string]Role, visited map[string]bool, depth int) []string {
	if depth > MaxInheritanceDepth {
		return nil
	}
	if visited[name] {
		return nil
	}
	visited[name] = true

	role, exists := roles[name]
	if !exists {
		return nil
	}

	result := make([]string, len(role.Permissions))
	copy(result, role.Permissions)

	for _, parent := range role.Inherits {
		result = append(result, collectPermissions(parent, roles, visited, depth+1)...)
	}

	return result
}
