package audit

import "errors"

// ErrEntryNotFound is returned when the requested audit entry does not
// exist.
var ErrEntryNotFound = errors.New("audit: entry not found")
