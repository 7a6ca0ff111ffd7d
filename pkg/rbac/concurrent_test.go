package rbac_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/pkg/rbac"
)

// Registrations and resolutions race here on purpose: resolvers must never
// observe the registry mid-mutation and closures must stay consistent.
func TestConcurrentResolveAndRegister(t *testing.T) {
	t.Parallel()

	registry, err := rbac.NewRegistry(rbac.DefaultRoles())
	require.NoError(t, err)
	resolver := rbac.NewResolver(registry)

	const (
		readers   = 8
		writes    = 20
		readLoops = 200
	)

	var wg sync.WaitGroup

	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < readLoops; j++ {
				closure := resolver.Resolve(rbac.RoleAdmin)
				// Inherited user permissions are always present regardless
				// of concurrent registrations.
				assert.Contains(t, closure, "profile:*")
				assert.Empty(t, resolver.Resolve("no_such_role"))
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			err := registry.Register(fmt.Sprintf("dynamic_%d", i), rbac.Role{
				Permissions: []string{"dynamic:read"},
				Inherits:    []string{rbac.RoleUser},
			})
			assert.NoError(t, err)
		}
	}()

	wg.Wait()

	// Everything registered during the race is resolvable afterwards.
	for i := 0; i < writes; i++ {
		closure := resolver.Resolve(fmt.Sprintf("dynamic_%d", i))
		assert.Contains(t, closure, "dynamic:read")
		assert.Contains(t, closure, "profile:*")
	}
}
