package roles_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/pkg/apiclient"
	"github.com/platformkit/platformkit/svc/roles"
)

func newTestClient(t *testing.T, handler http.Handler) *roles.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return roles.NewClient(apiclient.New(server.URL))
}

func TestList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/roles", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("is_active"))
		assert.Equal(t, "false", r.URL.Query().Get("is_system"))

		_ = json.NewEncoder(w).Encode(roles.ListResponse{
			Data: []roles.RoleSummary{
				{ID: "r1", Name: "Editor", Slug: "editor", IsActive: true},
			},
			Pagination: apiclient.Pagination{Page: 1, PageSize: 20, TotalItems: 1, TotalPages: 1},
		})
	}))

	active, system := true, false
	resp, err := client.List(context.Background(), apiclient.ListParams{}, roles.ListFilter{
		IsActive: &active,
		IsSystem: &system,
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "editor", resp.Data[0].Slug)
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		id := uuid.NewString()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/roles/"+id, r.URL.Path)
			_ = json.NewEncoder(w).Encode(roles.Role{
				ID:          id,
				Name:        "Editor",
				Slug:        "editor",
				Permissions: []string{"posts:read", "posts:update"},
			})
		}))

		role, err := client.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, []string{"posts:read", "posts:update"}, role.Permissions)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, roles.ErrRoleNotFound)
	})
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req roles.CreateRoleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "support", req.Slug)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(roles.Role{ID: uuid.NewString(), Name: req.Name, Slug: req.Slug})
		}))

		role, err := client.Create(context.Background(), roles.CreateRoleRequest{
			Name:        "Support",
			Slug:        "support",
			Permissions: []string{"tickets:*"},
		})
		require.NoError(t, err)
		assert.Equal(t, "support", role.Slug)
	})

	t.Run("slug conflict", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))

		_, err := client.Create(context.Background(), roles.CreateRoleRequest{Name: "Dup", Slug: "dup"})
		assert.ErrorIs(t, err, roles.ErrSlugExists)
	})
}

func TestDeleteSystemRole(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"system_role","message":"Cannot modify system role: admin"}`))
	}))

	err := client.Delete(context.Background(), "admin")
	assert.ErrorIs(t, err, roles.ErrSystemRole)
	assert.ErrorIs(t, err, apiclient.ErrForbidden)
}

func TestAssignments(t *testing.T) {
	t.Parallel()

	t.Run("user roles", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/u1/roles", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []roles.Assignment{
					{UserID: "u1", RoleID: "r1", Role: &roles.RoleSummary{Slug: "editor"}},
				},
			})
		}))

		assignments, err := client.UserRoles(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		assert.Equal(t, "editor", assignments[0].Role.Slug)
	})

	t.Run("assign", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/users/u1/roles", r.URL.Path)

			var req roles.AssignRoleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(roles.Assignment{UserID: "u1", RoleID: req.RoleID})
		}))

		assignment, err := client.Assign(context.Background(), "u1", roles.AssignRoleRequest{RoleID: "r1"})
		require.NoError(t, err)
		assert.Equal(t, "r1", assignment.RoleID)
	})

	t.Run("assign duplicate", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))

		_, err := client.Assign(context.Background(), "u1", roles.AssignRoleRequest{RoleID: "r1"})
		assert.ErrorIs(t, err, roles.ErrAlreadyAssigned)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		var path string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.Method + " " + r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, client.Remove(context.Background(), "u1", "r1"))
		assert.Equal(t, "DELETE /users/u1/roles/r1", path)
	})
}

func TestPermissionChecks(t *testing.T) {
	t.Parallel()

	t.Run("check allowed", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/permissions/check", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "u1", body["user_id"])
			assert.Equal(t, "posts:update", body["permission"])

			_ = json.NewEncoder(w).Encode(roles.CheckResult{
				Allowed:           true,
				MatchedPermission: "posts:*",
				MatchedRole:       "editor",
			})
		}))

		allowed, err := client.HasPermission(context.Background(), "u1", "posts:update")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("effective permissions", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/u1/permissions", r.URL.Path)
			_ = json.NewEncoder(w).Encode(roles.UserPermissions{
				Permissions: []string{"posts:read", "posts:update"},
				Roles:       []roles.RoleSummary{{Slug: "editor"}},
			})
		}))

		perms, err := client.UserPermissions(context.Background(), "u1")
		require.NoError(t, err)
		assert.Contains(t, perms.Permissions, "posts:update")
	})
}
