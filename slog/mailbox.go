// Package slog provides logging decorators for service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/margins"
)

// Ensure LoggingMailbox implements margins.Mailbox.
var _ margins.Mailbox = (*LoggingMailbox)(nil)

// LoggingMailbox wraps a Mailbox with activity logging.
type LoggingMailbox struct {
	next   margins.Mailbox
	logger *slog.Logger
}

// NewLoggingMailbox creates a new LoggingMailbox.
func NewLoggingMailbox(next margins.Mailbox, logger *slog.Logger) *LoggingMailbox {
	return &LoggingMailbox{next: next, logger: logger}
}

// Unread delegates to the wrapped mailbox and logs the operation.
func (m *LoggingMailbox) Unread(ctx context.Context) (messages []*margins.Message, err error) {
	defer func(begin time.Time) {
		m.logger.Info("mailbox unread",
			"count", len(messages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Unread(ctx)
}

// MarkProcessed delegates to the wrapped mailbox and logs the operation.
func (m *LoggingMailbox) MarkProcessed(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("mailbox mark processed",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.MarkProcessed(ctx, id)
}
