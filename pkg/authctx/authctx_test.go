package authctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/pkg/authctx"
	"github.com/platformkit/platformkit/pkg/rbac"
)

func TestFromClaims(t *testing.T) {
	t.Parallel()

	t.Run("full claim set", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{
			"sub":            "user-123",
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
			"roles":          []any{"user", "manager"},
			"permissions":    []any{"reports:export"},
			"tenant_id":      "tenant-456",
			"session_id":     "session-789",
			"scope":          "openid profile email",
		})
		require.NoError(t, err)

		assert.Equal(t, "user-123", ac.UserID)
		assert.Equal(t, "test@example.com", ac.Email)
		assert.True(t, ac.EmailVerified)
		assert.Equal(t, "Test User", ac.Name)
		assert.Equal(t, []string{"user", "manager"}, ac.Roles)
		assert.Equal(t, []string{"reports:export"}, ac.Permissions)
		assert.Equal(t, "tenant-456", ac.TenantID)
		assert.Equal(t, "session-789", ac.SessionID)
		assert.Equal(t, []string{"openid", "profile", "email"}, ac.Scopes)
		assert.True(t, ac.Authenticated)
	})

	t.Run("minimal claims", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{"sub": "user-123"})
		require.NoError(t, err)

		assert.Equal(t, "user-123", ac.UserID)
		assert.Empty(t, ac.Email)
		assert.False(t, ac.EmailVerified)
		assert.Empty(t, ac.Roles)
		assert.Empty(t, ac.Permissions)
		assert.Empty(t, ac.Scopes)
		assert.True(t, ac.Authenticated)
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()
		_, err := authctx.FromClaims(map[string]any{})
		assert.ErrorIs(t, err, authctx.ErrInvalidToken)
	})

	t.Run("empty subject", func(t *testing.T) {
		t.Parallel()
		_, err := authctx.FromClaims(map[string]any{"sub": ""})
		assert.ErrorIs(t, err, authctx.ErrInvalidToken)
	})

	t.Run("non-string subject", func(t *testing.T) {
		t.Parallel()
		_, err := authctx.FromClaims(map[string]any{"sub": 42})
		assert.ErrorIs(t, err, authctx.ErrInvalidToken)
	})

	t.Run("string slice claims accepted directly", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{
			"sub":   "user-123",
			"roles": []string{"admin"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, ac.Roles)
	})

	t.Run("non-string role entries dropped", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{
			"sub":   "user-123",
			"roles": []any{"user", 7, nil},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"user"}, ac.Roles)
	})

	t.Run("duplicate scopes preserved in order", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{
			"sub":   "user-123",
			"scope": "profile openid profile",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"profile", "openid", "profile"}, ac.Scopes)
	})
}

func TestHasPermission(t *testing.T) {
	t.Parallel()

	t.Run("via role closure", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{
			"sub":   "u1",
			"roles": []any{"user"},
		})
		require.NoError(t, err)

		// user's direct grant profile:* covers profile:read.
		assert.True(t, ac.HasPermission("profile:read"))
		assert.True(t, ac.HasPermission("notifications:delete"))
		// guest permissions inherited through user.
		assert.True(t, ac.HasPermission("resources:read"))
		assert.False(t, ac.HasPermission("users:read"))
	})

	t.Run("via explicit permission", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{
			"sub":         "u1",
			"permissions": []any{"users:*"},
		})
		require.NoError(t, err)

		assert.True(t, ac.HasPermission("users:read"))
		assert.True(t, ac.HasPermission("users:delete"))
		assert.False(t, ac.HasPermission("settings:read"))
	})

	t.Run("malformed required fails closed", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{
			"sub":         "u1",
			"permissions": []any{"users:*"},
		})
		require.NoError(t, err)
		assert.False(t, ac.HasPermission("malformed"))
		assert.False(t, ac.HasPermission(""))
	})

	t.Run("custom resolver", func(t *testing.T) {
		t.Parallel()
		registry, err := rbac.NewRegistry(map[string]rbac.Role{
			"operator": {Permissions: []string{"machines:*"}},
		})
		require.NoError(t, err)

		ac, err := authctx.FromClaims(
			map[string]any{"sub": "u1", "roles": []any{"operator"}},
			authctx.WithResolver(rbac.NewResolver(registry)),
		)
		require.NoError(t, err)

		assert.True(t, ac.HasPermission("machines:start"))
		// The built-in table is not consulted for custom registries.
		assert.False(t, ac.HasPermission("profile:read"))
	})
}

func TestHasRole(t *testing.T) {
	t.Parallel()

	ac, err := authctx.FromClaims(map[string]any{
		"sub":   "u1",
		"roles": []any{"admin"},
	})
	require.NoError(t, err)

	assert.True(t, ac.HasRole("admin"))
	// Inheritance expands permissions, never role identity.
	assert.False(t, ac.HasRole("user"))
	assert.False(t, ac.HasRole("super_admin"))
}

func TestHasAnyRole(t *testing.T) {
	t.Parallel()

	ac, err := authctx.FromClaims(map[string]any{
		"sub":   "u1",
		"roles": []any{"user", "manager"},
	})
	require.NoError(t, err)

	assert.True(t, ac.HasAnyRole("admin", "manager"))
	assert.False(t, ac.HasAnyRole("admin", "super_admin"))
	assert.False(t, ac.HasAnyRole())
}

func TestIsAdmin(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		claims   map[string]any
		expected bool
	}{
		{
			name:     "admin role",
			claims:   map[string]any{"sub": "u1", "roles": []any{"admin"}},
			expected: true,
		},
		{
			name:     "super_admin role",
			claims:   map[string]any{"sub": "u1", "roles": []any{"super_admin"}},
			expected: true,
		},
		{
			name:     "explicit super wildcard",
			claims:   map[string]any{"sub": "u1", "permissions": []any{"*"}},
			expected: true,
		},
		{
			name:     "regular user",
			claims:   map[string]any{"sub": "u1", "roles": []any{"user"}},
			expected: false,
		},
		{
			name:     "no roles",
			claims:   map[string]any{"sub": "u1"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ac, err := authctx.FromClaims(tt.claims)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ac.IsAdmin())
		})
	}
}

func TestIsSuperAdmin(t *testing.T) {
	t.Parallel()

	t.Run("super_admin role", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{"sub": "u1", "roles": []any{"super_admin"}})
		require.NoError(t, err)
		assert.True(t, ac.IsSuperAdmin())
		assert.True(t, ac.IsAdmin())
	})

	t.Run("explicit wildcard with no roles", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{"sub": "u1", "permissions": []any{"*"}})
		require.NoError(t, err)
		assert.True(t, ac.IsSuperAdmin())
	})

	t.Run("wildcard via custom role closure", func(t *testing.T) {
		t.Parallel()
		registry, err := rbac.NewRegistry(map[string]rbac.Role{
			"root": {Permissions: []string{"*"}},
		})
		require.NoError(t, err)

		ac, err := authctx.FromClaims(
			map[string]any{"sub": "u1", "roles": []any{"root"}},
			authctx.WithResolver(rbac.NewResolver(registry)),
		)
		require.NoError(t, err)
		assert.True(t, ac.IsSuperAdmin())
	})

	t.Run("admin is not super admin", func(t *testing.T) {
		t.Parallel()
		ac, err := authctx.FromClaims(map[string]any{"sub": "u1", "roles": []any{"admin"}})
		require.NoError(t, err)
		assert.False(t, ac.IsSuperAdmin())
	})
}

func TestHasScope(t *testing.T) {
	t.Parallel()

	ac, err := authctx.FromClaims(map[string]any{
		"sub":   "u1",
		"scope": "openid profile",
	})
	require.NoError(t, err)

	assert.True(t, ac.HasScope("openid"))
	assert.False(t, ac.HasScope("email"))
}

func TestEffectivePermissions(t *testing.T) {
	t.Parallel()

	ac, err := authctx.FromClaims(map[string]any{
		"sub":         "u1",
		"roles":       []any{"guest"},
		"permissions": []any{"reports:export", "profile:read"},
	})
	require.NoError(t, err)

	// Explicit permissions united with the guest closure, deduplicated
	// and sorted.
	assert.Equal(t,
		[]string{"profile:read", "reports:export", "resources:read"},
		ac.EffectivePermissions(),
	)
}

func TestEndToEndAdminScenario(t *testing.T) {
	t.Parallel()

	ac, err := authctx.FromClaims(map[string]any{
		"sub":       "u1",
		"roles":     []any{"admin"},
		"tenant_id": "t1",
	})
	require.NoError(t, err)

	assert.Equal(t, "t1", ac.TenantID)
	assert.True(t, ac.HasRole("admin"))
	assert.False(t, ac.HasRole("user"))
	assert.True(t, ac.HasPermission("users:write"), "inherited via admin's users:* grant")
	assert.True(t, ac.IsAdmin())
	assert.False(t, ac.IsSuperAdmin())
}
