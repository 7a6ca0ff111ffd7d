// Package audit is the typed client for the platform audit log service:
// recording audit events and querying the audit trail by event type,
// actor, resource, or time range.
package audit
