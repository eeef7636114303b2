package pkglog

import "context"

type correlationIDKey struct{}

// WithCorrelationID stores the correlation ID of the current run in ctx.
func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

// CorrelationID returns the correlation ID stored in ctx, if any.
func CorrelationID(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok || cid == "" {
		return "", false
	}
	return cid, true
}
