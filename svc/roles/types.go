package roles

import (
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Role is a tenant-scoped named permission bundle.
type Role struct {
	ID             string    `json:"id,omitempty"`
	TenantID       string    `json:"tenant_id,omitempty"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description,omitempty"`
	Permissions    []string  `json:"permissions,omitempty"`
	HierarchyLevel int       `json:"hierarchy_level"`
	IsSystem       bool      `json:"is_system"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
	UpdatedAt      time.Time `json:"updated_at,omitzero"`
	CreatedBy      string    `json:"created_by,omitempty"`
	UpdatedBy      string    `json:"updated_by,omitempty"`
}

// RoleSummary is the compact role view used in lists and assignments.
type RoleSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	HierarchyLevel  int    `json:"hierarchy_level"`
	IsSystem        bool   `json:"is_system"`
	IsActive        bool   `json:"is_active"`
	PermissionCount int    `json:"permission_count,omitempty"`
}

// Assignment binds a role to a user, optionally with an expiry.
type Assignment struct {
	ID        string       `json:"id,omitempty"`
	UserID    string       `json:"user_id"`
	RoleID    string       `json:"role_id"`
	Role      *RoleSummary `json:"role,omitempty"`
	GrantedAt *time.Time   `json:"granted_at,omitempty"`
	GrantedBy string       `json:"granted_by,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

// CreateRoleRequest creates a new custom role.
type CreateRoleRequest struct {
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    string   `json:"description,omitempty"`
	Permissions    []string `json:"permissions,omitempty"`
	HierarchyLevel int      `json:"hierarchy_level,omitempty"`
}

// UpdateRoleRequest carries a partial role update; nil pointers are left
// untouched server-side.
type UpdateRoleRequest struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Permissions    []string `json:"permissions,omitempty"`
	HierarchyLevel *int     `json:"hierarchy_level,omitempty"`
	IsActive       *bool    `json:"is_active,omitempty"`
}

// AssignRoleRequest grants a role to a user.
type AssignRoleRequest struct {
	RoleID    string     `json:"role_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CheckResult is the server's verdict on a permission check, naming the
// permission and role that satisfied it when allowed.
type CheckResult struct {
	Allowed           bool   `json:"allowed"`
	MatchedPermission string `json:"matched_permission,omitempty"`
	MatchedRole       string `json:"matched_role,omitempty"`
}

// UserPermissions is a user's effective permission set with the roles it
// derives from.
type UserPermissions struct {
	Permissions []string      `json:"permissions"`
	Roles       []RoleSummary `json:"roles,omitempty"`
}

// ListResponse is a paginated page of role summaries.
type ListResponse struct {
	Data       []RoleSummary        `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}

type assignmentsResponse struct {
	Data []Assignment `json:"data"`
}
