package users

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Client talks to the platform user management service.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with user service calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// ListFilter narrows List results. Zero values are omitted.
type ListFilter struct {
	Status UserStatus
	Role   string
	TeamID string
}

func (f ListFilter) values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.Role != "" {
		v.Set("role", f.Role)
	}
	if f.TeamID != "" {
		v.Set("team_id", f.TeamID)
	}
	return v
}

// List returns a page of users in the tenant.
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
	if err := c.api.Get(ctx, "/users", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &resp, nil
}

// Get fetches a user by ID.
func (c *Client) Get(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := c.api.Get(ctx, "/users/"+url.PathEscape(userID), nil, &user); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// Create registers a new user account.
func (c *Client) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	if err := c.api.Post(ctx, "/users", req, &user); err != nil {
		if errors.Is(err, apiclient.ErrConflict) {
			return nil, errors.Join(ErrEmailTaken, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Update applies a partial update to a user.
func (c *Client) Update(ctx context.Context, userID string, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.api.Put(ctx, "/users/"+url.PathEscape(userID), req, &user); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

// Delete soft-deletes a user.
func (c *Client) Delete(ctx context.Context, userID string) error {
	if err := c.api.Delete(ctx, "/users/"+url.PathEscape(userID), nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrUserNotFound, err)
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// UpdateStatus transitions a user to a new lifecycle state. The reason
// is recorded in the audit trail when provided.
func (c *Client) UpdateStatus(ctx context.Context, userID string, status UserStatus, reason string) (*User, error) {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["reason"] = reason
	}

	var user User
	if err := c.api.Patch(ctx, "/users/"+url.PathEscape(userID)+"/status", body, &user); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("update user status: %w", err)
	}
	return &user, nil
}

// UpdateRoles replaces a user's role assignments.
func (c *Client) UpdateRoles(ctx context.Context, userID string, roles []string) (*User, error) {
	var user User
	body := map[string][]string{"roles": roles}
	if err := c.api.Put(ctx, "/users/"+url.PathEscape(userID)+"/roles", body, &user); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("update user roles: %w", err)
	}
	return &user, nil
}

// ResetPassword triggers a password reset for a user. With sendEmail the
// user receives a reset link; otherwise the response carries a temporary
// password.
func (c *Client) ResetPassword(ctx context.Context, userID string, sendEmail bool) (map[string]any, error) {
	var resp map[string]any
	body := map[string]bool{"send_email": sendEmail}
	if err := c.api.Post(ctx, "/users/"+url.PathEscape(userID)+"/password", body, &resp); err != nil {
		return nil, fmt.Errorf("reset password: %w", err)
	}
	return resp, nil
}

// Stats returns aggregated user counts for the tenant.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.api.Get(ctx, "/users/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return &stats, nil
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.api.Get(ctx, "/me", nil, &profile); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// UpdateMe applies a partial update to the current user's profile.
func (c *Client) UpdateMe(ctx context.Context, fields map[string]any) (*Profile, error) {
	var profile Profile
	if err := c.api.Patch(ctx, "/me", fields, &profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &profile, nil
}

// MyPreferences fetches the current user's preferences.
func (c *Client) MyPreferences(ctx context.Context) (*Preferences, error) {
	var prefs Preferences
	if err := c.api.Get(ctx, "/me/preferences", nil, &prefs); err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return &prefs, nil
}

// UpdateMyPreferences applies a partial update to the current user's
// preferences.
func (c *Client) UpdateMyPreferences(ctx context.Context, prefs Preferences) (*Preferences, error) {
	var updated Preferences
	if err := c.api.Patch(ctx, "/me/preferences", prefs, &updated); err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}
	return &updated, nil
}

// ChangePassword changes the current user's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	if err := c.api.Post(ctx, "/me/password", body, nil); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}
