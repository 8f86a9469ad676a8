package margins

import "context"

// Messenger delivers a rendered report to a downstream transport: a chat
// message, an email body, or a file on disk. The text is used verbatim as
// the message body.
type Messenger interface {
	Send(ctx context.Context, text string) error
}
