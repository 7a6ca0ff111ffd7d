package teams

import (
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// MemberRole is a member's role within a team, unrelated to platform
// RBAC roles.
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleLead   MemberRole = "lead"
	RoleMember MemberRole = "member"
	RoleGuest  MemberRole = "guest"
)

// Team is a working group within a tenant. Teams form a tree via
// ParentID; Path and Level are maintained server-side.
type Team struct {
	ID          string         `json:"id,omitempty"`
	TenantID    string         `json:"tenant_id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	ParentID    string         `json:"parent_id,omitempty"`
	Path        string         `json:"path,omitempty"`
	Level       int            `json:"level"`
	OwnerID     string         `json:"owner_id,omitempty"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	IsActive    bool           `json:"is_active"`
	IsPrivate   bool           `json:"is_private"`
	Settings    map[string]any `json:"settings,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at,omitzero"`
	UpdatedAt   time.Time      `json:"updated_at,omitzero"`
}

// Tree is a team with its children nested.
type Tree struct {
	Team
	Children         []Tree `json:"children,omitempty"`
	MemberCount      int    `json:"member_count,omitempty"`
	TotalMemberCount int    `json:"total_member_count,omitempty"`
}

// UserSummary is the compact user view embedded in member records.
type UserSummary struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Member is a user's membership in a team.
type Member struct {
	ID        string       `json:"id,omitempty"`
	TeamID    string       `json:"team_id"`
	UserID    string       `json:"user_id"`
	Role      MemberRole   `json:"role"`
	JoinedAt  *time.Time   `json:"joined_at,omitempty"`
	InvitedBy string       `json:"invited_by,omitempty"`
	User      *UserSummary `json:"user,omitempty"`
}

// CreateTeamRequest creates a team, optionally under a parent.
type CreateTeamRequest struct {
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	ParentID    string         `json:"parent_id,omitempty"`
	OwnerID     string         `json:"owner_id,omitempty"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	IsPrivate   bool           `json:"is_private,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// UpdateTeamRequest carries a partial team update.
type UpdateTeamRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	OwnerID     *string        `json:"owner_id,omitempty"`
	AvatarURL   *string        `json:"avatar_url,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	IsPrivate   *bool          `json:"is_private,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// AddMemberRequest adds a user to a team.
type AddMemberRequest struct {
	UserID string     `json:"user_id"`
	Role   MemberRole `json:"role,omitempty"`
}

// ListResponse is a paginated page of teams.
type ListResponse struct {
	Data       []Team               `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}

// MembersResponse is a paginated page of team members.
type MembersResponse struct {
	Data       []Member             `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}

type treeResponse struct {
	Data []Tree `json:"data"`
}
