package features

import "errors"

var (
	// ErrFlagNotFound is returned when the requested flag does not exist.
	ErrFlagNotFound = errors.New("features: flag not found")

	// ErrInvalidRule is returned when a targeting rule cannot be
	// evaluated, e.g. an unknown operator or a malformed value.
	ErrInvalidRule = errors.New("features: invalid targeting rule")
)
