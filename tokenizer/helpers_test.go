package tokenizer_test

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/beaver/internal/trace"
)

func tokenizerContext(l *slog.Logger) context.Context {
	return trace.WithLogger(context.Background(), l)
}
