package permissions

import (
	"slices"
	"sort"
	"strings"
)

const (
	// Separator splits the resource and action segments of a permission.
	Separator = ":"

	// Wildcard matches any value in the segment it occupies. A bare
	// Wildcard with no separator is the super-wildcard matching every
	// permission.
	Wildcard = "*"

	// ScopeSeparator is used to separate multiple scopes in a claim string.
	ScopeSeparator = " "
)

// Matches reports whether a granted permission satisfies a required one.
//
// Matching rules:
//   - Super-wildcard: granted "*" matches everything, including required
//     strings that are not valid permissions. The override is checked
//     before the required side's shape.
//   - Segment wildcards: "users:*" matches any action on users,
//     "*:read" matches read on any resource.
//   - Exact: "users:read" matches only "users:read".
//
// A granted or required string that is neither the super-wildcard nor a
// two-segment resource:action pair never matches. Authorization checks
// built on Matches fail closed on malformed input instead of erroring.
func Matches(granted, required string) bool {
	if granted == Wildcard {
		return true
	}

	grantedResource, grantedAction, ok := split(granted)
	if !ok {
		return false
	}
	requiredResource, requiredAction, ok := split(required)
	if !ok {
		return false
	}

	if grantedResource != Wildcard && grantedResource != requiredResource {
		return false
	}
	return grantedAction == Wildcard || grantedAction == requiredAction
}

// split breaks a permission into its resource and action segments.
// Returns false for anything that is not exactly two non-empty segments.
func split(permission string) (resource, action string, ok bool) {
	resource, action, found := strings.Cut(permission, Separator)
	if !found || resource == "" || action == "" {
		return "", "", false
	}
	if strings.Contains(action, Separator) {
		return "", "", false
	}
	return resource, action, true
}

// Valid reports whether a permission string is the super-wildcard or a
// well-formed resource:action pair.
func Valid(permission string) bool {
	if permission == Wildcard {
		return true
	}
	_, _, ok := split(permission)
	return ok
}

// Has reports whether any granted permission matches the required one.
func Has(granted []string, required string) bool {
	for _, g := range granted {
		if Matches(g, required) {
			return true
		}
	}
	return false
}

// HasAny reports whether at least one required permission is matched by
// the granted set. Returns true for an empty required list.
func HasAny(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, req := range required {
		if Has(granted, req) {
			return true
		}
	}
	return false
}

// HasAll reports whether every required permission is matched by the
// granted set. Returns true for an empty required list.
func HasAll(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(granted) == 0 {
		return false
	}
	for _, req := range required {
		if !Has(granted, req) {
			return false
		}
	}
	return true
}

// ParseScopes converts a space-separated scope claim into a string slice.
//
// Trims spaces and removes empty entries. Returns nil for empty input.
// Order and duplicates from the source claim are preserved.
func ParseScopes(scopesStr string) []string {
	scopesStr = strings.TrimSpace(scopesStr)
	if scopesStr == "" {
		return nil
	}

	parts := strings.Split(scopesStr, ScopeSeparator)
	scopes := make([]string, 0, len(parts))
	for i := range parts {
		if parts[i] = strings.TrimSpace(parts[i]); parts[i] != "" {
			scopes = append(scopes, parts[i])
		}
	}
	return scopes
}

// JoinScopes converts a slice of scopes back to a space-separated claim
// string. Returns an empty string for empty or nil input.
func JoinScopes(scopes []string) string {
	if len(scopes) == 0 {
		return ""
	}
	return strings.Join(scopes, ScopeSeparator)
}

// Normalize removes duplicate permissions and sorts them alphabetically.
// Returns nil for empty input.
func Normalize(perms []string) []string {
	if len(perms) == 0 {
		return nil
	}

	unique := make(map[string]struct{}, len(perms))
	for i := range perms {
		unique[perms[i]] = struct{}{}
	}

	normalized := make([]string, 0, len(unique))
	for p := range unique {
		normalized = append(normalized, p)
	}
	sort.Strings(normalized)
	return normalized
}

// HasSuperWildcard reports whether the set contains the literal
// super-wildcard permission.
func HasSuperWildcard(perms []string) bool {
	return slices.Contains(perms, Wildcard)
}
