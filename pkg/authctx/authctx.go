package authctx

import (
	"errors"
	"fmt"
	"slices"

	"github.com/platformkit/platformkit/pkg/jwt"
	"github.com/platformkit/platformkit/pkg/permissions"
	"github.com/platformkit/platformkit/pkg/rbac"
)

// Claim names recognized by FromClaims.
const (
	ClaimSubject       = "sub"
	ClaimEmail         = "email"
	ClaimEmailVerified = "email_verified"
	ClaimName          = "name"
	ClaimRoles         = "roles"
	ClaimPermissions   = "permissions"
	ClaimTenantID      = "tenant_id"
	ClaimSessionID     = "session_id"
	ClaimScope         = "scope"
)

// Context is the authenticated principal for one request, built from
// already-validated token claims. It is immutable after construction and
// safe to share across goroutines for the lifetime of the request.
type Context struct {
	UserID        string
	Email         string
	EmailVerified bool
	Name          string
	Roles         []string
	Permissions   []string
	TenantID      string
	SessionID     string
	// Scopes preserves the order and duplicates of the source scope claim.
	Scopes        []string
	Authenticated bool

	resolver *rbac.Resolver
}

// Option customizes context construction.
type Option func(*Context)

// WithResolver binds the context's permission checks to a specific role
// resolver, e.g. one built over a per-tenant registry. Without it the
// package-wide resolver over the built-in role table is used.
func WithResolver(resolver *rbac.Resolver) Option {
	return func(c *Context) {
		if resolver != nil {
			c.resolver = resolver
		}
	}
}

// defaultResolver serves contexts that were not bound to an explicit
// registry. The built-in table never changes, so sharing is safe.
var defaultResolver = rbac.NewResolver(rbac.DefaultRegistry())

// FromClaims builds an authorization context from decoded,
// trust-boundary-validated token claims.
//
// The subject claim is required; everything else defaults to empty. The
// scope claim, if present, is split on spaces into an ordered sequence.
// Construction either fully succeeds or fails with ErrInvalidToken; no
// partially built context is ever returned.
func FromClaims(claims map[string]any, opts ...Option) (*Context, error) {
	sub := stringClaim(claims, ClaimSubject)
	if sub == "" {
		return nil, errors.Join(ErrInvalidToken, fmt.Errorf("missing required claim %q", ClaimSubject))
	}

	c := &Context{
		UserID:        sub,
		Email:         stringClaim(claims, ClaimEmail),
		EmailVerified: boolClaim(claims, ClaimEmailVerified),
		Name:          stringClaim(claims, ClaimName),
		Roles:         stringSliceClaim(claims, ClaimRoles),
		Permissions:   stringSliceClaim(claims, ClaimPermissions),
		TenantID:      stringClaim(claims, ClaimTenantID),
		SessionID:     stringClaim(claims, ClaimSessionID),
		Scopes:        permissions.ParseScopes(stringClaim(claims, ClaimScope)),
		Authenticated: true,
		resolver:      defaultResolver,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FromToken decodes a JWT access token without signature verification
// and builds an authorization context from its claims. It is meant for
// client-side decisions over a token the server already vouched for;
// the server remains the authority on every protected call.
func FromToken(token string, opts ...Option) (*Context, error) {
	claims, err := jwt.DecodeUnverified(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return FromClaims(claims, opts...)
}

// HasPermission reports whether the required permission is matched by the
// context's explicit permissions or by the resolved closure of any of its
// roles. Malformed input fails closed.
func (c *Context) HasPermission(permission string) bool {
	if permissions.Has(c.Permissions, permission) {
		return true
	}
	for _, role := range c.Roles {
		if permissions.Has(c.resolver.Resolve(role), permission) {
			return true
		}
	}
	return false
}

// HasRole reports exact membership in the role set. Inheritance expands
// permissions, not role identity: a context holding "admin" does not
// HasRole("user").
func (c *Context) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// HasAnyRole reports whether the context holds at least one of the roles.
func (c *Context) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if c.HasRole(role) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the context carries administrative authority:
// the admin or super_admin role, or an effective super-wildcard grant.
func (c *Context) IsAdmin() bool {
	if c.HasAnyRole(rbac.RoleAdmin, rbac.RoleSuperAdmin) {
		return true
	}
	return c.IsSuperAdmin()
}

// IsSuperAdmin reports whether the context holds the super_admin role or
// the literal super-wildcard permission, explicitly or through any role's
// closure.
func (c *Context) IsSuperAdmin() bool {
	if c.HasRole(rbac.RoleSuperAdmin) {
		return true
	}
	if permissions.HasSuperWildcard(c.Permissions) {
		return true
	}
	for _, role := range c.Roles {
		if permissions.HasSuperWildcard(c.resolver.Resolve(role)) {
			return true
		}
	}
	return false
}

// HasScope reports whether the token carried the given scope.
func (c *Context) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// EffectivePermissions returns the normalized union of the context's
// explicit permissions and the closures of all its roles. The union is
// computed on demand; the context itself caches nothing.
func (c *Context) EffectivePermissions() []string {
	effective := make([]string, 0, len(c.Permissions))
	effective = append(effective, c.Permissions...)
	for _, role := range c.Roles {
		effective = append(effective, c.resolver.Resolve(role)...)
	}
	return permissions.Normalize(effective)
}

func stringClaim(claims map[string]any, name string) string {
	s, _ := claims[name].(string)
	return s
}

func boolClaim(claims map[string]any, name string) bool {
	b, _ := claims[name].(bool)
	return b
}

// stringSliceClaim tolerates both []string and the []any produced by JSON
// decoding; non-string elements are dropped.
func stringSliceClaim(claims map[string]any, name string) []string {
	switch v := claims[name].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
