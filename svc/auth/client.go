package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/platformkit/platformkit/pkg/apiclient"
	"github.com/platformkit/platformkit/pkg/authctx"
)

// Client talks to the platform authentication service.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with auth service calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Login exchanges a username/password pair for a token pair using the
// password grant. On success the access token is installed on the
// underlying API client for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
	}

	var tokens TokenResponse
	if err := c.api.PostForm(ctx, "/auth/token", form, &tokens); err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) || errors.Is(err, apiclient.ErrBadRequest) {
			return nil, errors.Join(ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	c.api.SetAccessToken(tokens.AccessToken)
	return &tokens, nil
}

// RefreshToken exchanges a refresh token for a fresh token pair and
// installs the new access token on the underlying API client.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}

	var tokens TokenResponse
	if err := c.api.PostForm(ctx, "/auth/token/refresh", form, &tokens); err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return nil, errors.Join(ErrRefreshTokenExpired, err)
		}
		return nil, fmt.Errorf("refresh token: %w", err)
	}

	c.api.SetAccessToken(tokens.AccessToken)
	return &tokens, nil
}

// RevokeToken invalidates a refresh or access token server-side.
func (c *Client) RevokeToken(ctx context.Context, token string) error {
	form := url.Values{"token": {token}}
	if err := c.api.PostForm(ctx, "/auth/token/revoke", form, nil); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IntrospectToken asks the server whether a token is active and returns
// its claims.
func (c *Client) IntrospectToken(ctx context.Context, token string) (*TokenIntrospection, error) {
	form := url.Values{"token": {token}}

	var info TokenIntrospection
	if err := c.api.PostForm(ctx, "/auth/token/introspect", form, &info); err != nil {
		return nil, fmt.Errorf("introspect token: %w", err)
	}
	return &info, nil
}

// UserInfo fetches the OIDC userinfo for the current access token.
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.api.Get(ctx, "/auth/userinfo", nil, &info); err != nil {
		return nil, fmt.Errorf("userinfo: %w", err)
	}
	return &info, nil
}

// Logout terminates the current session server-side. The caller is
// responsible for discarding any locally held tokens.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ListSessions returns the principal's active sessions.
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	var resp sessionsResponse
	if err := c.api.Get(ctx, "/auth/sessions", nil, &resp); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return resp.Sessions, nil
}

// TerminateSession revokes a single session by ID.
func (c *Client) TerminateSession(ctx context.Context, sessionID string) error {
	if err := c.api.Delete(ctx, "/auth/sessions/"+url.PathEscape(sessionID), nil); err != nil {
		return fmt.Errorf("terminate session: %w", err)
	}
	return nil
}

// UserContext builds an authorization context from an access token
// without server verification. Use it to make client-side permission
// decisions; the server remains the authority.
func (c *Client) UserContext(accessToken string, opts ...authctx.Option) (*authctx.Context, error) {
	user, err := authctx.FromToken(accessToken, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidAccessToken, err)
	}
	return user, nil
}
