// Package permissions implements wildcard matching for the platform's
// resource:action permission strings.
//
// A permission is a two-segment identifier such as "users:read". Either
// segment may be the wildcard "*" ("users:*", "*:read"), and the bare
// string "*" is the super-wildcard matching every permission. Strings
// with any other shape are malformed: they never match and never cause
// an error, so authorization checks fail closed on bad data.
//
// Basic usage:
//
//	permissions.Matches("users:*", "users.read") // false, wrong separator
//	permissions.Matches("users:*", "users:read") // true
//	permissions.Matches("*", "anything")         // true
//
//	granted := []string{"users:read", "reports:*"}
//	permissions.Has(granted, "reports:create") // true
//	permissions.HasAll(granted, []string{"users:read", "users:write"}) // false
//
// The package also carries helpers for the OAuth-style space-separated
// scope claim carried by platform access tokens (ParseScopes, JoinScopes).
//
// All functions are pure and allocation-light; none of them return errors.
package permissions
