// Package invitations is the typed client for the platform invitation
// service: issuing single and bulk invitations, managing their
// lifecycle, and the public token endpoints for validating and accepting
// them.
//
// It also provides compact signed link tokens (GenerateLinkToken /
// ParseLinkToken) for embedding invitation references in URLs without a
// server round-trip.
package invitations
