// Package notifications is the typed client for the platform
// notification service: the current user's notification feed, read
// state, delivery preferences, channel subscriptions, and push device
// registration.
package notifications
