package invitations

import (
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Status is the invitation lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusViewed    Status = "viewed"
	StatusAccepted  Status = "accepted"
	StatusExpired   Status = "expired"
	StatusRevoked   Status = "revoked"
	StatusCompleted Status = "completed"
)

// Type names what the invitation grants access to.
type Type string

const (
	TypeUser         Type = "user"
	TypeTeam         Type = "team"
	TypeOrganization Type = "organization"
	TypeCustom       Type = "custom"
)

// Invitation is the full invitation record. Token is only populated on
// creation responses.
type Invitation struct {
	ID         string `json:"id,omitempty"`
	TenantID   string `json:"tenant_id"`
	Token      string `json:"token,omitempty"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Type       Type   `json:"invitation_type"`
	TargetID   string `json:"target_id,omitempty"`
	TargetRole string `json:"target_role,omitempty"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`

	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	ViewedAt   *time.Time `json:"viewed_at,omitempty"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`

	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitzero"`
	CreatedBy string         `json:"created_by,omitempty"`
}

// Summary is the compact invitation view used in lists.
type Summary struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	Type      Type       `json:"invitation_type"`
	Status    Status     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
}

// Validated is the result of validating an invitation token.
type Validated struct {
	Valid      bool        `json:"valid"`
	Invitation *Invitation `json:"invitation,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// CreateRequest creates a single invitation.
type CreateRequest struct {
	Email         string         `json:"email"`
	Name          string         `json:"name,omitempty"`
	Type          Type           `json:"invitation_type"`
	TargetID      string         `json:"target_id,omitempty"`
	TargetRole    string         `json:"target_role,omitempty"`
	Message       string         `json:"message,omitempty"`
	ExpiresInDays int            `json:"expires_in_days,omitempty"`
	SendEmail     bool           `json:"send_email,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// BulkRequest creates many invitations in one call.
type BulkRequest struct {
	Invitations []CreateRequest `json:"invitations"`
	SendEmails  bool            `json:"send_emails,omitempty"`
}

// BulkFailure identifies one invitation that could not be created.
type BulkFailure struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// BulkResult summarizes a bulk creation, listing successes and failures.
type BulkResult struct {
	Successful   []Summary     `json:"successful,omitempty"`
	Failed       []BulkFailure `json:"failed,omitempty"`
	Total        int           `json:"total"`
	SuccessCount int           `json:"success_count"`
	FailureCount int           `json:"failure_count"`
}

// AcceptRequest carries the account details supplied when accepting an
// invitation.
type AcceptRequest struct {
	Name     string         `json:"name,omitempty"`
	Password string         `json:"password,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// AcceptResponse is the outcome of accepting an invitation.
type AcceptResponse struct {
	Success     bool   `json:"success"`
	UserID      string `json:"user_id,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Message     string `json:"message,omitempty"`
}

// CleanupRequest controls the admin cleanup run.
type CleanupRequest struct {
	ExpirePending       bool `json:"expire_pending"`
	DeleteOlderThanDays int  `json:"delete_older_than_days,omitempty"`
}

// CleanupResult reports what the cleanup run did.
type CleanupResult struct {
	ExpiredCount int `json:"expired_count"`
	DeletedCount int `json:"deleted_count"`
}

// ListResponse is a paginated page of invitation summaries.
type ListResponse struct {
	Data       []Summary            `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}
