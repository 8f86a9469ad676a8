// Package telegram delivers rendered reports through the Telegram Bot API.
package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/fwojciec/margins"
)

// Compile-time interface verification.
var _ margins.Messenger = (*Messenger)(nil)

// maxMessageLen is the Telegram Bot API limit for a single message.
const maxMessageLen = 4096

// BotAPI is the subset of the Telegram client used by Messenger.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Messenger sends report text to a single Telegram chat. Long reports
// are split into multiple messages on line boundaries.
type Messenger struct {
	bot    BotAPI
	chatID int64

	// Telegram throttles bots that send faster than one message per
	// second to the same chat.
	limiter *rate.Limiter
}

// NewMessenger creates a Messenger authenticated with the given bot token.
func NewMessenger(token string, chatID int64) (*Messenger, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, margins.Errorf(margins.EINVALID, "failed to authenticate telegram bot: %v", err)
	}
	return NewMessengerWithBot(bot, chatID), nil
}

// NewMessengerWithBot creates a Messenger with a pre-built client.
func NewMessengerWithBot(bot BotAPI, chatID int64) *Messenger {
	return &Messenger{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

// Send delivers the text to the configured chat.
func (m *Messenger) Send(ctx context.Context, text string) error {
	for _, part := range splitMessage(text, maxMessageLen) {
		if err := m.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := m.bot.Send(tgbotapi.NewMessage(m.chatID, part)); err != nil {
			return margins.Errorf(margins.EINTERNAL, "failed to send telegram message: %v", err)
		}
	}
	return nil
}

// splitMessage breaks text into chunks of at most limit bytes, splitting
// on line boundaries where possible. A single line longer than the limit
// is split mid-line.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			if b.Len() > 0 {
				parts = append(parts, b.String())
				b.Reset()
			}
			parts = append(parts, line[:limit])
			line = line[limit:]
		}
		// +1 for the newline separator.
		if b.Len() > 0 && b.Len()+len(line)+1 > limit {
			parts = append(parts, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}

	return parts
}
