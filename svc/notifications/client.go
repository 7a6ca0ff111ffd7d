package notifications

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Client talks to the platform notification service on behalf of the
// current user.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with notification service calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// ListFilter narrows List results. Zero values are omitted; Status
// defaults to "all" server-side.
type ListFilter struct {
	Status   string
	Category string
	Channel  Channel
}

func (f ListFilter) values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Channel != "" {
		v.Set("type", string(f.Channel))
	}
	return v
}

// List returns a page of the current user's notifications.
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
	if err := c.api.Get(ctx, "/notifications", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return &resp, nil
}

// Get fetches a notification by ID.
func (c *Client) Get(ctx context.Context, notificationID string) (*Notification, error) {
	var n Notification
	if err := c.api.Get(ctx, "/notifications/"+url.PathEscape(notificationID), nil, &n); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrNotificationNotFound, err)
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// Delete removes a notification.
func (c *Client) Delete(ctx context.Context, notificationID string) error {
	if err := c.api.Delete(ctx, "/notifications/"+url.PathEscape(notificationID), nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrNotificationNotFound, err)
		}
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// MarkAsRead marks a single notification as read.
func (c *Client) MarkAsRead(ctx context.Context, notificationID string) (*Notification, error) {
	var n Notification
	path := "/notifications/" + url.PathEscape(notificationID) + "/read"
	if err := c.api.Post(ctx, path, nil, &n); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrNotificationNotFound, err)
		}
		return nil, fmt.Errorf("mark as read: %w", err)
	}
	return &n, nil
}

// MarkAllAsRead marks every unread notification as read, narrowed to a
// category when given. Returns the number of notifications updated.
func (c *Client) MarkAllAsRead(ctx context.Context, category string) (int, error) {
	body := map[string]string{}
	if category != "" {
		body["category"] = category
	}

	var resp struct {
		UpdatedCount int `json:"updated_count"`
	}
	if err := c.api.Post(ctx, "/notifications/read-all", body, &resp); err != nil {
		return 0, fmt.Errorf("mark all as read: %w", err)
	}
	return resp.UpdatedCount, nil
}

// UnreadCount returns the number of unread notifications.
func (c *Client) UnreadCount(ctx context.Context) (*UnreadCount, error) {
	var count UnreadCount
	if err := c.api.Get(ctx, "/notifications/unread-count", nil, &count); err != nil {
		return nil, fmt.Errorf("unread count: %w", err)
	}
	return &count, nil
}

// Preferences fetches the current user's notification preferences.
func (c *Client) Preferences(ctx context.Context) (*Preferences, error) {
	var prefs Preferences
	if err := c.api.Get(ctx, "/notifications/preferences", nil, &prefs); err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return &prefs, nil
}

// UpdatePreferences replaces the current user's notification
// preferences.
func (c *Client) UpdatePreferences(ctx context.Context, prefs Preferences) (*Preferences, error) {
	var updated Preferences
	if err := c.api.Put(ctx, "/notifications/preferences", prefs, &updated); err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}
	return &updated, nil
}

// Categories lists the notification categories the tenant exposes.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp categoriesResponse
	if err := c.api.Get(ctx, "/notifications/categories", nil, &resp); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return resp.Data, nil
}

// Subscriptions lists the current user's channel subscriptions.
func (c *Client) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var resp subscriptionsResponse
	if err := c.api.Get(ctx, "/notifications/subscriptions", nil, &resp); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return resp.Data, nil
}

// Subscribe binds a channel to a topic. Endpoint is required for
// channels that deliver outside the platform, e.g. webhooks.
func (c *Client) Subscribe(ctx context.Context, channel Channel, topic, endpoint string) (*Subscription, error) {
	body := map[string]string{
		"channel": string(channel),
		"topic":   topic,
	}
	if endpoint != "" {
		body["endpoint"] = endpoint
	}

	var sub Subscription
	if err := c.api.Post(ctx, "/notifications/subscriptions", body, &sub); err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	return &sub, nil
}

// Unsubscribe removes a channel subscription.
func (c *Client) Unsubscribe(ctx context.Context, subscriptionID string) error {
	if err := c.api.Delete(ctx, "/notifications/subscriptions/"+url.PathEscape(subscriptionID), nil); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return nil
}

// Devices lists the current user's registered push devices.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	var resp devicesResponse
	if err := c.api.Get(ctx, "/notifications/devices", nil, &resp); err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return resp.Data, nil
}

// RegisterDevice registers a push-notification target.
func (c *Client) RegisterDevice(ctx context.Context, platform, token, name string) (*Device, error) {
	body := map[string]string{
		"platform": platform,
		"token":    token,
	}
	if name != "" {
		body["name"] = name
	}

	var device Device
	if err := c.api.Post(ctx, "/notifications/devices", body, &device); err != nil {
		return nil, fmt.Errorf("register device: %w", err)
	}
	return &device, nil
}

// UnregisterDevice removes a push-notification target.
func (c *Client) UnregisterDevice(ctx context.Context, deviceID string) error {
	if err := c.api.Delete(ctx, "/notifications/devices/"+url.PathEscape(deviceID), nil); err != nil {
		return fmt.Errorf("unregister device: %w", err)
	}
	return nil
}

// SendTest asks the server to deliver a test notification over a
// channel.
func (c *Client) SendTest(ctx context.Context, channel Channel, message string) error {
	body := map[string]string{"channel": string(channel)}
	if message != "" {
		body["message"] = message
	}
	if err := c.api.Post(ctx, "/notifications/test", body, nil); err != nil {
		return fmt.Errorf("send test notification: %w", err)
	}
	return nil
}
