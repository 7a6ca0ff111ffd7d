package auth

import "context"

// OAuth provider identifiers.
const (
	OAuthProviderGoogle = "google"
)

// ProviderProfile is the provider-neutral account view resolved from an
// OAuth code exchange.
type ProviderProfile struct {
	ProviderUserID string
	Email          string
	EmailVerified  bool
	Name           string
	AvatarURL      string
}

// ProviderAdapter hides provider-specific OAuth mechanics behind a
// uniform surface so the login flow stays provider-agnostic.
type ProviderAdapter interface {
	// ProviderID identifies the provider, e.g. "google".
	ProviderID() string
	// AuthURL builds the provider authorization URL carrying the given
	// anti-CSRF state token.
	AuthURL(state string) (string, error)
	// ResolveProfile exchanges an authorization code for the account
	// profile. Exchange failures surface as ErrInvalidCode; accounts
	// without an email surface as ErrNoPrimaryEmail.
	ResolveProfile(ctx context.Context, code string) (ProviderProfile, error)
}

// LoginWithProvider completes an OAuth flow: it resolves the provider
// profile from the authorization code, then exchanges that profile for a
// platform token pair. The access token is installed on the underlying
// API client.
func (c *Client) LoginWithProvider(ctx context.Context, adapter ProviderAdapter, code string) (*TokenResponse, error) {
	profile, err := adapter.ResolveProfile(ctx, code)
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	payload := map[string]any{
		"provider":         adapter.ProviderID(),
		"provider_user_id": profile.ProviderUserID,
		"email":            profile.Email,
		"email_verified":   profile.EmailVerified,
		"name":             profile.Name,
		"avatar_url":       profile.AvatarURL,
	}
	if err := c.api.Post(ctx, "/auth/oauth/exchange", payload, &tokens); err != nil {
		return nil, err
	}

	c.api.SetAccessToken(tokens.AccessToken)
	return &tokens, nil
}
