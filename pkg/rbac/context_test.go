package rbac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/pkg/rbac"
)

func TestRolesContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	roles, ok := rbac.GetRolesFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, roles)

	ctx = rbac.SetRolesToContext(ctx, "editor", "viewer")
	roles, ok = rbac.GetRolesFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, []string{"editor", "viewer"}, roles)
}

func TestCanFromContext(t *testing.T) {
	t.Parallel()

	registry, err := rbac.NewRegistry(testRoles())
	require.NoError(t, err)
	resolver := rbac.NewResolver(registry)

	t.Run("no roles stored", func(t *testing.T) {
		t.Parallel()

		err := resolver.CanFromContext(context.Background(), "users:read")
		assert.ErrorIs(t, err, rbac.ErrRoleNotInContext)
	})

	t.Run("any role grants", func(t *testing.T) {
		t.Parallel()

		ctx := rbac.SetRolesToContext(context.Background(), "viewer", "editor")
		assert.NoError(t, resolver.CanFromContext(ctx, "users:write"))
	})

	t.Run("inherited permission grants", func(t *testing.T) {
		t.Parallel()

		ctx := rbac.SetRolesToContext(context.Background(), "editor")
		assert.NoError(t, resolver.CanFromContext(ctx, "users:read"))
	})

	t.Run("no role qualifies", func(t *testing.T) {
		t.Parallel()

		ctx := rbac.SetRolesToContext(context.Background(), "viewer")
		err := resolver.CanFromContext(ctx, "billing:manage")
		assert.ErrorIs(t, err, rbac.ErrInsufficientPermissions)
	})
}
