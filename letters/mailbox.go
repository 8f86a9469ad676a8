// Package letters reads notebook export emails from a local maildir-style
// directory using the letters email parser.
package letters

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/margins"
	"github.com/mnako/letters"
)

// Compile-time interface verification.
var _ margins.Mailbox = (*Mailbox)(nil)

// processedSuffix marks messages that have already been ingested.
const processedSuffix = ".processed"

// Mailbox reads .eml files from a directory. Files renamed with a
// ".processed" suffix are considered read.
type Mailbox struct {
	dir string
}

// NewMailbox creates a Mailbox over the given directory.
func NewMailbox(dir string) *Mailbox {
	return &Mailbox{dir: dir}
}

// Unread returns all unprocessed messages that carry HTML content,
// ordered by message ID. Messages without HTML are skipped.
func (m *Mailbox) Unread(ctx context.Context) ([]*margins.Message, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, err
	}

	var messages []*margins.Message
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".eml") {
			continue
		}

		msg, err := m.readMessage(entry.Name())
		if margins.ErrorCode(err) == margins.ENOTFOUND {
			// No HTML content to parse.
			continue
		}
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].ID < messages[j].ID
	})

	return messages, nil
}

// MarkProcessed renames the message file so it is excluded from future
// Unread calls.
func (m *Mailbox) MarkProcessed(ctx context.Context, id string) error {
	src := filepath.Join(m.dir, id)
	if err := os.Rename(src, src+processedSuffix); err != nil {
		if os.IsNotExist(err) {
			return margins.Errorf(margins.ENOTFOUND, "message not found: %s", id)
		}
		return err
	}
	return nil
}

// readMessage parses a single .eml file. The file name doubles as the
// message ID so MarkProcessed can find it again.
func (m *Mailbox) readMessage(name string) (*margins.Message, error) {
	f, err := os.Open(filepath.Join(m.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	email, err := letters.ParseEmail(f)
	if err != nil {
		return nil, err
	}

	html, err := exportHTML(email)
	if err != nil {
		return nil, err
	}

	msg := &margins.Message{
		ID:      name,
		Subject: email.Headers.Subject,
		Date:    email.Headers.Date,
		HTML:    html,
	}
	if len(email.Headers.From) > 0 {
		msg.From = email.Headers.From[0].Address
	}

	return msg, nil
}

// exportHTML extracts the notebook HTML from a parsed email. The Kindle
// app attaches the export as an HTML file; some clients inline it as the
// HTML body instead. Attachments win because the inline body is usually
// just a cover note.
func exportHTML(email letters.Email) (string, error) {
	for _, att := range email.AttachedFiles {
		if isHTMLAttachment(att) {
			return string(att.Data), nil
		}
	}
	if strings.TrimSpace(email.HTML) != "" {
		return email.HTML, nil
	}
	return "", margins.Errorf(margins.ENOTFOUND, "no HTML content in message")
}

func isHTMLAttachment(att letters.AttachedFile) bool {
	if att.ContentType.ContentType == "text/html" {
		return true
	}
	name := strings.ToLower(att.ContentType.Params["name"])
	return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")
}
