package notifications

import "errors"

// ErrNotificationNotFound is returned when the requested notification
// does not exist or belongs to another user.
var ErrNotificationNotFound = errors.New("notifications: notification not found")
