package tenants

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// ListDepartments returns a page of the tenant's departments.
func (c *Client) ListDepartments(ctx context.Context, params apiclient.ListParams) (*DepartmentListResponse, error) {
	var resp DepartmentListResponse
	if err := c.api.Get(ctx, "/departments", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return &resp, nil
}

// DepartmentTree returns the tenant's departments as nested trees,
// rooted at top-level departments.
func (c *Client) DepartmentTree(ctx context.Context) ([]DepartmentTree, error) {
	var resp treeResponse
	if err := c.api.Get(ctx, "/departments/tree", nil, &resp); err != nil {
		return nil, fmt.Errorf("department tree: %w", err)
	}
	return resp.Data, nil
}

// GetDepartment fetches a department by ID.
func (c *Client) GetDepartment(ctx context.Context, departmentID string) (*Department, error) {
	var dept Department
	if err := c.api.Get(ctx, "/departments/"+url.PathEscape(departmentID), nil, &dept); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrDepartmentNotFound, err)
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &dept, nil
}

// CreateDepartment creates a department, nested under ParentID when set.
func (c *Client) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*Department, error) {
	var dept Department
	if err := c.api.Post(ctx, "/departments", req, &dept); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return &dept, nil
}

// UpdateDepartment applies a partial update to a department.
func (c *Client) UpdateDepartment(ctx context.Context, departmentID string, req UpdateDepartmentRequest) (*Department, error) {
	var dept Department
	if err := c.api.Put(ctx, "/departments/"+url.PathEscape(departmentID), req, &dept); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrDepartmentNotFound, err)
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return &dept, nil
}

// DeleteDepartment removes a department. With force, members and child
// departments are reassigned to the parent; without it the server
// rejects deletion of non-empty departments.
func (c *Client) DeleteDepartment(ctx context.Context, departmentID string, force bool) error {
	path := "/departments/" + url.PathEscape(departmentID)
	if force {
		path += "?force=true"
	}
	if err := c.api.Delete(ctx, path, nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrDepartmentNotFound, err)
		}
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}

// DepartmentMembers returns a page of the department's members.
func (c *Client) DepartmentMembers(ctx context.Context, departmentID string, params apiclient.ListParams) (*MembersResponse, error) {
	var resp MembersResponse
	path := "/departments/" + url.PathEscape(departmentID) + "/members"
	if err := c.api.Get(ctx, path, params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("department members: %w", err)
	}
	return &resp, nil
}

// MoveDepartment reparents a department. An empty newParentID moves it
// to the top level.
func (c *Client) MoveDepartment(ctx context.Context, departmentID, newParentID string) (*Department, error) {
	var dept Department
	body := map[string]string{"parent_id": newParentID}
	path := "/departments/" + url.PathEscape(departmentID) + "/move"
	if err := c.api.Post(ctx, path, body, &dept); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrDepartmentNotFound, err)
		}
		return nil, fmt.Errorf("move department: %w", err)
	}
	return &dept, nil
}
