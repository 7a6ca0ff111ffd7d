package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the token endpoint rejects
	// a username/password pair.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrRefreshTokenExpired is returned when a refresh token is expired
	// or revoked.
	ErrRefreshTokenExpired = errors.New("auth: refresh token expired or invalid")

	// ErrInvalidAccessToken is returned when an access token is rejected
	// by the server or cannot be decoded locally.
	ErrInvalidAccessToken = errors.New("auth: invalid access token")

	// ErrInvalidCode is returned when an OAuth authorization code cannot
	// be exchanged.
	ErrInvalidCode = errors.New("auth: invalid authorization code")

	// ErrNoPrimaryEmail is returned when an OAuth provider cannot
	// produce an email for the account.
	ErrNoPrimaryEmail = errors.New("auth: provider returned no primary email")
)
