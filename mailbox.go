package margins

import (
	"context"
	"time"
)

// Message is one mail message carrying a notebook export document.
type Message struct {
	ID      string // stable identifier within the mailbox
	Subject string
	From    string
	Date    time.Time
	HTML    string // the export document, decoded to native text
}

// Mailbox lists unread export messages and marks them processed.
// Implementations hide the mail transport; transport-level failures
// (missing document, unreadable attachment) surface here, before the
// parsing core is ever invoked.
type Mailbox interface {
	// Unread returns messages that have not been marked processed.
	Unread(ctx context.Context) ([]*Message, error)

	// MarkProcessed marks a message so Unread no longer returns it.
	// Returns ENOTFOUND if the message does not exist.
	MarkProcessed(ctx context.Context, id string) error
}
