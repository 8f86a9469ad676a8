package mock

import (
	"context"

	"github.com/fwojciec/margins"
)

var _ margins.Messenger = (*Messenger)(nil)

type Messenger struct {
	SendFn func(ctx context.Context, text string) error
}

func (m *Messenger) Send(ctx context.Context, text string) error {
	return m.SendFn(ctx, text)
}
