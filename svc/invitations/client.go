package invitations

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Client talks to the platform invitation service.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with invitation service calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// ListFilter narrows List results. Zero values are omitted.
type ListFilter struct {
	Status Status
	Type   Type
	Email  string
}

func (f ListFilter) values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.Type != "" {
		v.Set("invitation_type", string(f.Type))
	}
	if f.Email != "" {
		v.Set("email", f.Email)
	}
	return v
}

// List returns a page of invitation summaries.
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
	if err := c.api.Get(ctx, "/invitations", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return &resp, nil
}

// Get fetches an invitation by ID.
func (c *Client) Get(ctx context.Context, invitationID string) (*Invitation, error) {
	var inv Invitation
	if err := c.api.Get(ctx, "/invitations/"+url.PathEscape(invitationID), nil, &inv); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrInvitationNotFound, err)
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return &inv, nil
}

// Create issues a single invitation.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Invitation, error) {
	var inv Invitation
	if err := c.api.Post(ctx, "/invitations", req, &inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return &inv, nil
}

// CreateBulk issues many invitations in one call. Individual failures
// are reported in the result, not as an error.
func (c *Client) CreateBulk(ctx context.Context, req BulkRequest) (*BulkResult, error) {
	var result BulkResult
	if err := c.api.Post(ctx, "/invitations/bulk", req, &result); err != nil {
		return nil, fmt.Errorf("create bulk invitations: %w", err)
	}
	return &result, nil
}

// Revoke invalidates an invitation so its token can no longer be used.
func (c *Client) Revoke(ctx context.Context, invitationID string) error {
	if err := c.api.Delete(ctx, "/invitations/"+url.PathEscape(invitationID), nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrInvitationNotFound, err)
		}
		return fmt.Errorf("revoke invitation: %w", err)
	}
	return nil
}

// Resend sends the invitation email again. With extendExpiry the expiry
// window restarts from now.
func (c *Client) Resend(ctx context.Context, invitationID string, extendExpiry bool) (*Invitation, error) {
	var inv Invitation
	body := map[string]bool{"extend_expiry": extendExpiry}
	path := "/invitations/" + url.PathEscape(invitationID) + "/resend"
	if err := c.api.Post(ctx, path, body, &inv); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrInvitationNotFound, err)
		}
		return nil, fmt.Errorf("resend invitation: %w", err)
	}
	return &inv, nil
}

// ValidateToken checks an invitation token without consuming it. This is
// a public endpoint; no bearer token is required.
func (c *Client) ValidateToken(ctx context.Context, token string) (*Validated, error) {
	var result Validated
	if err := c.api.Get(ctx, "/invitations/validate/"+url.PathEscape(token), nil, &result); err != nil {
		return nil, c.tokenError(err, "validate token")
	}
	return &result, nil
}

// Accept consumes an invitation token, creating or linking the account.
// This is a public endpoint; no bearer token is required.
func (c *Client) Accept(ctx context.Context, token string, req AcceptRequest) (*AcceptResponse, error) {
	var result AcceptResponse
	if err := c.api.Post(ctx, "/invitations/accept/"+url.PathEscape(token), req, &result); err != nil {
		return nil, c.tokenError(err, "accept invitation")
	}
	return &result, nil
}

// Cleanup expires stale pending invitations and optionally purges old
// records. Admin only.
func (c *Client) Cleanup(ctx context.Context, req CleanupRequest) (*CleanupResult, error) {
	var result CleanupResult
	if err := c.api.Post(ctx, "/invitations/cleanup", req, &result); err != nil {
		return nil, fmt.Errorf("cleanup invitations: %w", err)
	}
	return &result, nil
}

// tokenError maps the 404/410 responses of the public token endpoints to
// the package sentinels. The server distinguishes expiry from revocation
// in the error code of the 410 body.
func (c *Client) tokenError(err error, op string) error {
	if errors.Is(err, apiclient.ErrNotFound) {
		return errors.Join(ErrTokenNotFound, err)
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Status == 410 {
		if strings.Contains(strings.ToLower(apiErr.Code+apiErr.Message), "expired") {
			return errors.Join(ErrTokenExpired, err)
		}
		return errors.Join(ErrTokenRevoked, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
