package audit

import (
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// EventType classifies an audit event. The dotted taxonomy groups
// events by subsystem.
type EventType string

const (
	EventLoginSuccess   EventType = "auth.login.success"
	EventLoginFailure   EventType = "auth.login.failure"
	EventLogout         EventType = "auth.logout"
	EventPasswordChange EventType = "auth.password.change"
	EventPasswordReset  EventType = "auth.password.reset"

	EventUserCreated   EventType = "user.created"
	EventUserUpdated   EventType = "user.updated"
	EventUserDeleted   EventType = "user.deleted"
	EventUserSuspended EventType = "user.suspended"
	EventUserActivated EventType = "user.activated"
	EventRoleAssigned  EventType = "user.role.assigned"
	EventRoleRemoved   EventType = "user.role.removed"

	EventResourceCreated  EventType = "resource.created"
	EventResourceUpdated  EventType = "resource.updated"
	EventResourceDeleted  EventType = "resource.deleted"
	EventResourceAccessed EventType = "resource.accessed"

	EventSettingsUpdated EventType = "settings.updated"
	EventCustom          EventType = "custom"
)

// Event is an audit event to be recorded. Actor and tenant attribution
// comes from the bearer token server-side.
type Event struct {
	Type         EventType      `json:"event_type"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type,omitempty"`
	ResourceID   string         `json:"resource_id,omitempty"`
	Description  string         `json:"description,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IPAddress    string         `json:"ip_address,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
}

// Entry is a recorded audit log entry.
type Entry struct {
	ID           string         `json:"id"`
	Type         EventType      `json:"event_type"`
	Action       string         `json:"action"`
	ActorID      string         `json:"actor_id,omitempty"`
	ActorEmail   string         `json:"actor_email,omitempty"`
	ActorName    string         `json:"actor_name,omitempty"`
	ResourceType string         `json:"resource_type,omitempty"`
	ResourceID   string         `json:"resource_id,omitempty"`
	Description  string         `json:"description,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IPAddress    string         `json:"ip_address,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
	TenantID     string         `json:"tenant_id,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ListResponse is a paginated page of audit entries.
type ListResponse struct {
	Data       []Entry              `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}
