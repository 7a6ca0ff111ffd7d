// Package teams is the typed client for the platform team service:
// hierarchical team CRUD and team membership management.
package teams
