package tenants

import (
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// TenantStatus is the lifecycle state of a tenant.
type TenantStatus string

const (
	StatusActive    TenantStatus = "active"
	StatusTrial     TenantStatus = "trial"
	StatusSuspended TenantStatus = "suspended"
	StatusDeleted   TenantStatus = "deleted"
)

// SubscriptionPlan names the tenant's billing tier.
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanStarter    SubscriptionPlan = "starter"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// SSOProvider names a tenant's single sign-on backend.
type SSOProvider string

const (
	SSOAzureAD SSOProvider = "azure_ad"
	SSOOkta    SSOProvider = "okta"
	SSOGoogle  SSOProvider = "google"
	SSOSAML    SSOProvider = "saml"
	SSOOIDC    SSOProvider = "oidc"
)

// Tenant is a customer organization on the platform.
type Tenant struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	Domain   string           `json:"domain,omitempty"`
	Status   TenantStatus     `json:"status"`
	Plan     SubscriptionPlan `json:"plan,omitempty"`
	Settings map[string]any   `json:"settings,omitempty"`
	Metadata map[string]any   `json:"metadata,omitempty"`

	UserCount int        `json:"user_count,omitempty"`
	TrialEnds *time.Time `json:"trial_ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SSOConfig is a tenant's single sign-on configuration. Provider-specific
// settings live in the untyped Config map since each provider has its own
// shape.
type SSOConfig struct {
	TenantID  string         `json:"tenant_id"`
	Provider  SSOProvider    `json:"provider"`
	Enabled   bool           `json:"enabled"`
	Config    map[string]any `json:"config,omitempty"`
	UpdatedAt time.Time      `json:"updated_at,omitzero"`
}

// SSOTestResult reports the outcome of an SSO connection test.
type SSOTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Latency int    `json:"latency_ms,omitempty"`
}

// SSOSyncResult reports the outcome of a directory sync run.
type SSOSyncResult struct {
	SyncID       string `json:"sync_id"`
	Status       string `json:"status"`
	UsersCreated int    `json:"users_created"`
	UsersUpdated int    `json:"users_updated"`
	UsersRemoved int    `json:"users_removed"`
}

// Department is an organizational unit within a tenant. Departments form
// a tree via ParentID.
type Department struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	ManagerID   string    `json:"manager_id,omitempty"`
	MemberCount int       `json:"member_count,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// DepartmentTree is a department with its children nested.
type DepartmentTree struct {
	Department
	Children []DepartmentTree `json:"children,omitempty"`
}

// Member is the compact user view returned by department member listings.
type Member struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// CreateTenantRequest provisions a new tenant.
type CreateTenantRequest struct {
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	Domain   string           `json:"domain,omitempty"`
	Plan     SubscriptionPlan `json:"plan,omitempty"`
	Settings map[string]any   `json:"settings,omitempty"`
	Metadata map[string]any   `json:"metadata,omitempty"`
}

// UpdateTenantRequest carries a partial tenant update.
type UpdateTenantRequest struct {
	Name     *string        `json:"name,omitempty"`
	Domain   *string        `json:"domain,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// UpdateSSOConfigRequest replaces a tenant's SSO configuration.
type UpdateSSOConfigRequest struct {
	Provider SSOProvider    `json:"provider"`
	Enabled  bool           `json:"enabled"`
	Config   map[string]any `json:"config,omitempty"`
}

// CreateDepartmentRequest creates a department, optionally under a parent.
type CreateDepartmentRequest struct {
	TenantID    string `json:"tenant_id,omitempty"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	ManagerID   string `json:"manager_id,omitempty"`
}

// UpdateDepartmentRequest carries a partial department update.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
}

// ListResponse is a paginated page of tenants.
type ListResponse struct {
	Data       []Tenant             `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}

// DepartmentListResponse is a paginated page of departments.
type DepartmentListResponse struct {
	Data       []Department         `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}

// MembersResponse is a paginated page of department members.
type MembersResponse struct {
	Data       []Member             `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}

type treeResponse struct {
	Data []DepartmentTree `json:"data"`
}
