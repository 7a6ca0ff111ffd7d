package roles

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Client talks to the platform role and permission service.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with role service calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// ListFilter narrows List results. Nil booleans are omitted.
type ListFilter struct {
	IsActive *bool
	IsSystem *bool
}

func (f ListFilter) values() url.Values {
	v := url.Values{}
	if f.IsActive != nil {
		v.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	if f.IsSystem != nil {
		v.Set("is_system", strconv.FormatBool(*f.IsSystem))
	}
	return v
}

// List returns a page of role summaries in the tenant.
func (c *Client) List(ctx context.Context, params apiclient.ListParams, filter ListFilter) (*ListResponse, error) {
	if len(params.Filters) == 0 {
		params.Filters = filter.values()
	} else {
		for k, vals := range filter.values() {
			for _, val := range vals {
				params.Filters.Add(k, val)
			}
		}
	}

	var resp ListResponse
	if err := c.api.Get(ctx, "/roles", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return &resp, nil
}

// Get fetches a role by ID.
func (c *Client) Get(ctx context.Context, roleID string) (*Role, error) {
	var role Role
	if err := c.api.Get(ctx, "/roles/"+url.PathEscape(roleID), nil, &role); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrRoleNotFound, err)
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// Create registers a new custom role.
func (c *Client) Create(ctx context.Context, req CreateRoleRequest) (*Role, error) {
	var role Role
	if err := c.api.Post(ctx, "/roles", req, &role); err != nil {
		if errors.Is(err, apiclient.ErrConflict) {
			return nil, errors.Join(ErrSlugExists, err)
		}
		return nil, fmt.Errorf("create role: %w", err)
	}
	return &role, nil
}

// Update applies a partial update to a role.
func (c *Client) Update(ctx context.Context, roleID string, req UpdateRoleRequest) (*Role, error) {
	var role Role
	if err := c.api.Put(ctx, "/roles/"+url.PathEscape(roleID), req, &role); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrRoleNotFound, err)
		}
		if isSystemRoleError(err) {
			return nil, errors.Join(ErrSystemRole, err)
		}
		return nil, fmt.Errorf("update role: %w", err)
	}
	return &role, nil
}

// isSystemRoleError reports whether the API rejected the call because
// the target is a protected system role.
func isSystemRoleError(err error) bool {
	var apiErr *apiclient.APIError
	return errors.As(err, &apiErr) && apiErr.Code == "system_role"
}

// Delete removes a role. System roles cannot be deleted.
func (c *Client) Delete(ctx context.Context, roleID string) error {
	if err := c.api.Delete(ctx, "/roles/"+url.PathEscape(roleID), nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrRoleNotFound, err)
		}
		if isSystemRoleError(err) {
			return errors.Join(ErrSystemRole, err)
		}
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// UserRoles returns the roles assigned to a user.
func (c *Client) UserRoles(ctx context.Context, userID string) ([]Assignment, error) {
	var resp assignmentsResponse
	if err := c.api.Get(ctx, "/users/"+url.PathEscape(userID)+"/roles", nil, &resp); err != nil {
		return nil, fmt.Errorf("user roles: %w", err)
	}
	return resp.Data, nil
}

// Assign grants a role to a user.
func (c *Client) Assign(ctx context.Context, userID string, req AssignRoleRequest) (*Assignment, error) {
	var assignment Assignment
	if err := c.api.Post(ctx, "/users/"+url.PathEscape(userID)+"/roles", req, &assignment); err != nil {
		if errors.Is(err, apiclient.ErrConflict) {
			return nil, errors.Join(ErrAlreadyAssigned, err)
		}
		return nil, fmt.Errorf("assign role: %w", err)
	}
	return &assignment, nil
}

// Remove revokes a role from a user.
func (c *Client) Remove(ctx context.Context, userID, roleID string) error {
	path := "/users/" + url.PathEscape(userID) + "/roles/" + url.PathEscape(roleID)
	if err := c.api.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("remove role: %w", err)
	}
	return nil
}

// CheckPermission asks the server whether a user holds a permission.
// This is the authoritative check; client-side matching via authctx is
// an optimization, not a substitute.
func (c *Client) CheckPermission(ctx context.Context, userID, permission string) (*CheckResult, error) {
	body := map[string]string{
		"user_id":    userID,
		"permission": permission,
	}

	var result CheckResult
	if err := c.api.Post(ctx, "/permissions/check", body, &result); err != nil {
		return nil, fmt.Errorf("check permission: %w", err)
	}
	return &result, nil
}

// UserPermissions returns a user's effective permissions with the roles
// they derive from.
func (c *Client) UserPermissions(ctx context.Context, userID string) (*UserPermissions, error) {
	var perms UserPermissions
	if err := c.api.Get(ctx, "/users/"+url.PathEscape(userID)+"/permissions", nil, &perms); err != nil {
		return nil, fmt.Errorf("user permissions: %w", err)
	}
	return &perms, nil
}

// HasPermission reports whether a user holds a permission, discarding
// the match detail.
func (c *Client) HasPermission(ctx context.Context, userID, permission string) (bool, error) {
	result, err := c.CheckPermission(ctx, userID, permission)
	if err != nil {
		return false, err
	}
	return result.Allowed, nil
}
