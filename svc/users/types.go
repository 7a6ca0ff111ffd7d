package users

import (
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusInactive  UserStatus = "inactive"
	StatusPending   UserStatus = "pending"
	StatusSuspended UserStatus = "suspended"
	StatusDeleted   UserStatus = "deleted"
)

// IdentityProvider names the source of a user's identity.
type IdentityProvider string

const (
	ProviderLocal     IdentityProvider = "local"
	ProviderGoogle    IdentityProvider = "google"
	ProviderMicrosoft IdentityProvider = "microsoft"
	ProviderOkta      IdentityProvider = "okta"
	ProviderSAML      IdentityProvider = "saml"
	ProviderOIDC      IdentityProvider = "oidc"
)

// User is the full user record.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"email_verified"`
	Name          string     `json:"name,omitempty"`
	GivenName     string     `json:"given_name,omitempty"`
	FamilyName    string     `json:"family_name,omitempty"`
	Picture       string     `json:"picture,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Status        UserStatus `json:"status"`
	Roles         []string   `json:"roles,omitempty"`

	TenantID  string `json:"tenant_id,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	TeamName  string `json:"team_name,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`

	IdentityProvider IdentityProvider `json:"identity_provider,omitempty"`
	ExternalID       string           `json:"external_id,omitempty"`

	Metadata    map[string]any `json:"metadata,omitempty"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Profile is the extended self-service view of the current user.
type Profile struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Name        string            `json:"name,omitempty"`
	GivenName   string            `json:"given_name,omitempty"`
	FamilyName  string            `json:"family_name,omitempty"`
	Picture     string            `json:"picture,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	JobTitle    string            `json:"job_title,omitempty"`
	Department  string            `json:"department,omitempty"`
	Location    string            `json:"location,omitempty"`
	Website     string            `json:"website,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
	Roles       []string          `json:"roles,omitempty"`
	TenantID    string            `json:"tenant_id,omitempty"`
	TenantName  string            `json:"tenant_name,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Preferences are the current user's settings. Unset fields keep their
// server-side defaults on update.
type Preferences struct {
	Locale           string         `json:"locale,omitempty"`
	Timezone         string         `json:"timezone,omitempty"`
	DateFormat       string         `json:"date_format,omitempty"`
	TimeFormat       string         `json:"time_format,omitempty"`
	Theme            string         `json:"theme,omitempty"`
	SidebarCollapsed bool           `json:"sidebar_collapsed,omitempty"`
	CompactMode      bool           `json:"compact_mode,omitempty"`
	Custom           map[string]any `json:"custom,omitempty"`
}

// CreateUserRequest creates a new user account.
type CreateUserRequest struct {
	Email          string         `json:"email"`
	Password       string         `json:"password,omitempty"`
	Name           string         `json:"name,omitempty"`
	GivenName      string         `json:"given_name,omitempty"`
	FamilyName     string         `json:"family_name,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Roles          []string       `json:"roles,omitempty"`
	TeamID         string         `json:"team_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	SendInvitation bool           `json:"send_invitation,omitempty"`
}

// UpdateUserRequest carries a partial user update; nil pointers are left
// untouched server-side.
type UpdateUserRequest struct {
	Name       *string        `json:"name,omitempty"`
	GivenName  *string        `json:"given_name,omitempty"`
	FamilyName *string        `json:"family_name,omitempty"`
	Phone      *string        `json:"phone,omitempty"`
	TeamID     *string        `json:"team_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Stats aggregates user counts for the tenant.
type Stats struct {
	TotalUsers             int            `json:"total_users"`
	ActiveUsers            int            `json:"active_users"`
	PendingUsers           int            `json:"pending_users"`
	SuspendedUsers         int            `json:"suspended_users"`
	UsersByRole            map[string]int `json:"users_by_role,omitempty"`
	UsersCreatedLast30Days int            `json:"users_created_last_30_days"`
	UsersActiveLast7Days   int            `json:"users_active_last_7_days"`
}

// ListResponse is a paginated page of users.
type ListResponse struct {
	Data       []User               `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}
