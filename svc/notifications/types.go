package notifications

import (
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Channel names a notification delivery channel.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
	ChannelInApp Channel = "in_app"
)

// Notification is a single message delivered to the current user.
type Notification struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	TenantID string  `json:"tenant_id,omitempty"`
	Channel  Channel `json:"type,omitempty"`
	Category string  `json:"category,omitempty"`
	Title    string  `json:"title"`
	Body     string  `json:"body,omitempty"`
	Link     string  `json:"link,omitempty"`

	Read      bool           `json:"read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// QuietHours is a do-not-disturb window in the user's timezone.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// Preferences control how notifications reach the user. Categories maps
// category name to per-channel switches.
type Preferences struct {
	EmailEnabled    bool                       `json:"email_enabled"`
	PushEnabled     bool                       `json:"push_enabled"`
	SMSEnabled      bool                       `json:"sms_enabled"`
	InAppEnabled    bool                       `json:"in_app_enabled"`
	DigestFrequency string                     `json:"digest_frequency,omitempty"`
	QuietHours      QuietHours                 `json:"quiet_hours,omitzero"`
	Categories      map[string]map[string]bool `json:"categories,omitempty"`
}

// Category is a notification category the tenant exposes.
type Category struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Subscription binds a channel to a topic, optionally with a delivery
// endpoint such as a webhook URL.
type Subscription struct {
	ID        string    `json:"id"`
	Channel   Channel   `json:"channel"`
	Topic     string    `json:"topic"`
	Endpoint  string    `json:"endpoint,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Device is a registered push-notification target.
type Device struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Token     string    `json:"token"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// UnreadCount reports unread totals, per category when the server
// provides a breakdown.
type UnreadCount struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category,omitempty"`
}

// ListResponse is a paginated page of notifications.
type ListResponse struct {
	Data       []Notification       `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}

type categoriesResponse struct {
	Data []Category `json:"data"`
}

type subscriptionsResponse struct {
	Data []Subscription `json:"data"`
}

type devicesResponse struct {
	Data []Device `json:"data"`
}
