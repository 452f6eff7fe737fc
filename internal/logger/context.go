package logger

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// WithContext returns a child context carrying l. Handlers down the chain
// pick it up via FromContext so their log lines share the request fields.
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx. Falls back to a no-op
// logger so callers never need a nil check.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
