package ingest_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/margins"
	"github.com/fwojciec/margins/ingest"
	"github.com/fwojciec/margins/mock"
)

const exportDocument = `<html><head><title>Atlas</title></head><body>
<div class="notebookFor">Notebook for: Atlas</div>
<div class="authors">J. Doe</div>
<div class="noteHeading">Highlight (yellow) - Page 12 &middot; Location 340</div>
<div class="noteText">Sample passage</div>
</body></html>`

type harness struct {
	mailbox   *mock.Mailbox
	exports   *mock.ExportService
	messenger *mock.Messenger
	seen      *mock.SeenFilter

	mu        sync.Mutex
	processed []string
	created   []*margins.Export
	sent      []string
}

func newHarness(messages ...*margins.Message) *harness {
	h := &harness{}
	h.mailbox = &mock.Mailbox{
		UnreadFn: func(ctx context.Context) ([]*margins.Message, error) {
			return messages, nil
		},
		MarkProcessedFn: func(ctx context.Context, id string) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.processed = append(h.processed, id)
			return nil
		},
	}
	h.exports = &mock.ExportService{
		CreateExportFn: func(ctx context.Context, export *margins.Export) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.created = append(h.created, export)
			return nil
		},
		FindExportsFn: func(ctx context.Context, filter margins.ExportFilter) ([]*margins.Export, error) {
			return nil, nil
		},
	}
	h.messenger = &mock.Messenger{
		SendFn: func(ctx context.Context, text string) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.sent = append(h.sent, text)
			return nil
		},
	}
	return h
}

func collectEvents(events *[]ingest.ProgressEvent) ingest.ProgressFunc {
	return func(event ingest.ProgressEvent) {
		*events = append(*events, event)
	}
}

func TestIngestor_Run(t *testing.T) {
	t.Parallel()

	t.Run("imports a new message", func(t *testing.T) {
		t.Parallel()

		h := newHarness(&margins.Message{ID: "a.eml", HTML: exportDocument})
		in := &ingest.Ingestor{Mailbox: h.mailbox, Exports: h.exports, Messenger: h.messenger}

		var events []ingest.ProgressEvent
		result, err := in.Run(context.Background(), collectEvents(&events))

		require.NoError(t, err)
		assert.Equal(t, &ingest.Result{Imported: 1}, result)

		require.Len(t, h.created, 1)
		assert.Equal(t, "Atlas", h.created[0].Title)
		assert.Equal(t, "J. Doe", h.created[0].Author)
		assert.Equal(t, "a.eml", h.created[0].Source)
		assert.Equal(t, ingest.ContentHash(exportDocument), h.created[0].ContentHash)
		require.Len(t, h.created[0].Highlights, 1)
		assert.Equal(t, "Sample passage", h.created[0].Highlights[0].Text)

		assert.Equal(t, []string{"a.eml"}, h.processed)

		require.Len(t, events, 3)
		assert.Equal(t, ingest.ProgressStarted, events[0].Type)
		assert.Equal(t, ingest.ProgressImported, events[1].Type)
		assert.Equal(t, "Atlas", events[1].Title)
		assert.Equal(t, ingest.ProgressFinished, events[2].Type)
	})

	t.Run("sends the rendered report", func(t *testing.T) {
		t.Parallel()

		h := newHarness(&margins.Message{ID: "a.eml", HTML: exportDocument})
		in := &ingest.Ingestor{Mailbox: h.mailbox, Exports: h.exports, Messenger: h.messenger}

		_, err := in.Run(context.Background(), nil)

		require.NoError(t, err)
		require.Len(t, h.sent, 1)
		notebook := margins.ParseNotebook(exportDocument)
		assert.Equal(t, margins.RenderMarkdown(notebook), h.sent[0])
	})

	t.Run("skips already imported documents", func(t *testing.T) {
		t.Parallel()

		h := newHarness(&margins.Message{ID: "dup.eml", HTML: exportDocument})
		h.exports.FindExportsFn = func(ctx context.Context, filter margins.ExportFilter) ([]*margins.Export, error) {
			require.NotNil(t, filter.ContentHash)
			assert.Equal(t, ingest.ContentHash(exportDocument), *filter.ContentHash)
			return []*margins.Export{{ID: "existing"}}, nil
		}
		in := &ingest.Ingestor{Mailbox: h.mailbox, Exports: h.exports, Messenger: h.messenger}

		result, err := in.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, &ingest.Result{Skipped: 1}, result)
		assert.Empty(t, h.created)
		assert.Empty(t, h.sent)
		assert.Equal(t, []string{"dup.eml"}, h.processed)
	})

	t.Run("seen filter miss avoids the storage lookup", func(t *testing.T) {
		t.Parallel()

		h := newHarness(&margins.Message{ID: "a.eml", HTML: exportDocument})
		h.exports.FindExportsFn = func(ctx context.Context, filter margins.ExportFilter) ([]*margins.Export, error) {
			t.Error("unexpected FindExports call")
			return nil, nil
		}

		var added []string
		h.seen = &mock.SeenFilter{
			TestFn: func(key string) bool { return false },
			AddFn: func(key string) {
				h.mu.Lock()
				defer h.mu.Unlock()
				added = append(added, key)
			},
		}
		in := &ingest.Ingestor{Mailbox: h.mailbox, Exports: h.exports, Seen: h.seen}

		result, err := in.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, &ingest.Result{Imported: 1}, result)
		assert.Equal(t, []string{ingest.ContentHash(exportDocument)}, added)
	})

	t.Run("counts per-message failures without aborting", func(t *testing.T) {
		t.Parallel()

		h := newHarness(
			&margins.Message{ID: "bad.eml", HTML: exportDocument},
			&margins.Message{ID: "good.eml", HTML: exportDocument + "<!-- v2 -->"},
		)
		h.exports.CreateExportFn = func(ctx context.Context, export *margins.Export) error {
			if export.Source == "bad.eml" {
				return errors.New("disk full")
			}
			h.mu.Lock()
			defer h.mu.Unlock()
			h.created = append(h.created, export)
			return nil
		}
		in := &ingest.Ingestor{Mailbox: h.mailbox, Exports: h.exports, Concurrency: 1}

		var events []ingest.ProgressEvent
		result, err := in.Run(context.Background(), collectEvents(&events))

		require.NoError(t, err)
		assert.Equal(t, &ingest.Result{Imported: 1, Failed: 1}, result)
		require.Len(t, h.created, 1)
		assert.Equal(t, "good.eml", h.created[0].Source)

		var failed *ingest.ProgressEvent
		for i := range events {
			if events[i].Type == ingest.ProgressFailed {
				failed = &events[i]
			}
		}
		require.NotNil(t, failed)
		assert.Equal(t, "bad.eml", failed.MessageID)
		assert.EqualError(t, failed.Error, "disk full")
	})

	t.Run("fails when the mailbox cannot be listed", func(t *testing.T) {
		t.Parallel()

		h := newHarness()
		h.mailbox.UnreadFn = func(ctx context.Context) ([]*margins.Message, error) {
			return nil, errors.New("maildir unreadable")
		}
		in := &ingest.Ingestor{Mailbox: h.mailbox, Exports: h.exports}

		_, err := in.Run(context.Background(), nil)

		assert.EqualError(t, err, "maildir unreadable")
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	assert.Len(t, ingest.ContentHash("abc"), 16)
	assert.Equal(t, ingest.ContentHash("abc"), ingest.ContentHash("abc"))
	assert.NotEqual(t, ingest.ContentHash("abc"), ingest.ContentHash("abd"))
}
