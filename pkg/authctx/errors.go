package authctx

import "errors"

var (
	// ErrInvalidToken is returned when token claims cannot produce a
	// context, most notably when the subject claim is missing or empty.
	ErrInvalidToken = errors.New("authctx: invalid token claims")

	// ErrUnauthenticated is returned by guards when no authenticated
	// context is present on the request.
	ErrUnauthenticated = errors.New("authctx: not authenticated")

	// ErrPermissionDenied is returned by guards when the authenticated
	// context lacks a required permission or role.
	ErrPermissionDenied = errors.New("authctx: permission denied")
)
