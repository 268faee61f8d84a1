package acl

import "context"

// Principal is the authenticated identity attached to a request. It is
// reconstructed from a verified token on every request and never persisted.
type Principal struct {
	AccountID string
	Email     string
	Role      string
}

type principalKey struct{}

// WithPrincipal stores p in ctx for downstream handlers.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromCtx extracts the authenticated principal from ctx.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
