// Package mock provides test doubles for service interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/margins"
)

var _ margins.Mailbox = (*Mailbox)(nil)

type Mailbox struct {
	UnreadFn        func(ctx context.Context) ([]*margins.Message, error)
	MarkProcessedFn func(ctx context.Context, id string) error
}

func (m *Mailbox) Unread(ctx context.Context) ([]*margins.Message, error) {
	return m.UnreadFn(ctx)
}

func (m *Mailbox) MarkProcessed(ctx context.Context, id string) error {
	return m.MarkProcessedFn(ctx, id)
}
