package invitations

import "errors"

var (
	// ErrInvitationNotFound is returned when the requested invitation
	// does not exist.
	ErrInvitationNotFound = errors.New("invitations: invitation not found")

	// ErrTokenNotFound is returned when an invitation token is unknown.
	ErrTokenNotFound = errors.New("invitations: token not found")

	// ErrTokenExpired is returned when an invitation token has expired.
	ErrTokenExpired = errors.New("invitations: token expired")

	// ErrTokenRevoked is returned when an invitation token was revoked.
	ErrTokenRevoked = errors.New("invitations: token revoked")

	// ErrInvalidLinkToken is returned when a locally minted invite-link
	// token is malformed or its signature does not verify.
	ErrInvalidLinkToken = errors.New("invitations: invalid link token")
)
