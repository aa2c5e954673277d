package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Ensure LoggingCompleter implements shopinsight.Completer.
var _ shopinsight.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer and logs prompt and reply sizes.
// Prompt contents are never logged.
type LoggingCompleter struct {
	next   shopinsight.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next shopinsight.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the operation.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt string) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"prompt_bytes", len(prompt),
			"reply_bytes", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}
