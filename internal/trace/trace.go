// Package trace carries a *slog.Logger through a context.Context.
package trace

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// WithLogger returns a context carrying l. If the context already
// carries a logger, it is returned as is.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}
	if _, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx, tagged with the
// component name. A discarding logger is returned when there is none.
func FromContext(ctx context.Context, component string) *slog.Logger {
	if ctx == nil {
		return nullLogger
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l.With(slog.String("component", component))
	}
	return nullLogger
}
