package authctx

import "context"

type authCtxKey struct{}

// SetToContext stores the authorization context for downstream handlers.
func SetToContext(ctx context.Context, ac *Context) context.Context {
	return context.WithValue(ctx, authCtxKey{}, ac)
}

// GetFromContext retrieves the authorization context.
// Returns nil if none was previously stored.
func GetFromContext(ctx context.Context) *Context {
	ac, _ := ctx.Value(authCtxKey{}).(*Context)
	return ac
}
