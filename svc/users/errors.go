package users

import "errors"

var (
	// ErrUserNotFound is returned when the requested user does not exist.
	ErrUserNotFound = errors.New("users: user not found")

	// ErrEmailTaken is returned when creating a user with an email that
	// already belongs to another account.
	ErrEmailTaken = errors.New("users: email already in use")
)
