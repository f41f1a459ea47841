package beaver

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/beaver/internal/trace"
)

// WithTraceLogger returns a context that makes the tokenizer and the
// tree builder log their state transitions to tlog at debug level.
// If the context already has a trace logger, it is returned as is.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return trace.WithLogger(ctx, tlog)
}
