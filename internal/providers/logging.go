package providers

import (
	"context"
	"log/slog"

	"github.com/elevenpool/league-console/internal/logging"
)

// logDecorator logs through the request-scoped logger and tags the entry with the read decorator
// that produced it.
func logDecorator(ctx context.Context, logger *slog.Logger, level slog.Level, decorator, msg string, args ...any) {
	args = append(args, slog.String(logging.FieldProvider, decorator))
	logging.Log(ctx, logger, level, msg, args...)
}
