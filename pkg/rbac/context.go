package rbac

import "context"

// rolesCtxKey is the context key carrying the acting roles of a request.
type rolesCtxKey struct{}

// SetRolesToContext stores the acting roles on the context so downstream
// code can run permission checks without re-decoding the caller's token.
func SetRolesToContext(ctx context.Context, roles ...string) context.Context {
	return context.WithValue(ctx, rolesCtxKey{}, roles)
}

// GetRolesFromContext retrieves the acting roles stored by
// SetRolesToContext.
func GetRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(rolesCtxKey{}).([]string)
	return roles, ok && len(roles) > 0
}

// CanFromContext checks the context's acting roles against a permission.
// Any role whose resolved closure matches grants it. Returns
// ErrRoleNotInContext when no roles were stored, and
// ErrInsufficientPermissions when none of them qualify.
func (r *Resolver) CanFromContext(ctx context.Context, permission string) error {
	roles, ok := GetRolesFromContext(ctx)
	if !ok {
		return ErrRoleNotInContext
	}
	for _, role := range roles {
		if r.Can(role, permission) == nil {
			return nil
		}
	}
	return ErrInsufficientPermissions
}
