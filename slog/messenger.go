package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/margins"
)

// Ensure LoggingMessenger implements margins.Messenger.
var _ margins.Messenger = (*LoggingMessenger)(nil)

// LoggingMessenger wraps a Messenger with activity logging.
type LoggingMessenger struct {
	next   margins.Messenger
	logger *slog.Logger
}

// NewLoggingMessenger creates a new LoggingMessenger.
func NewLoggingMessenger(next margins.Messenger, logger *slog.Logger) *LoggingMessenger {
	return &LoggingMessenger{next: next, logger: logger}
}

// Send delegates to the wrapped messenger and logs the operation.
func (m *LoggingMessenger) Send(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("messenger send",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Send(ctx, text)
}
