package pkglog

import "context"

type correlationIDKey struct{}

// CorrelationID returns the correlation ID stored in ctx, if any.
func CorrelationID(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok || cid == "" {
		return "", false
	}
	return cid, true
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
