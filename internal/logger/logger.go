package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// NewContext кладет логгер в контекст
func NewContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext достает логгер из контекста, если его нет - slog.Default()
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}
