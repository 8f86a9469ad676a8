// Package ingest orchestrates the import pipeline: it drains unread
// mailbox messages, parses each export document, archives the result,
// and optionally delivers a rendered report.
package ingest

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/margins"
)

// defaultConcurrency is used when Ingestor.Concurrency is not set.
const defaultConcurrency = 4

// ProgressType identifies the kind of progress event.
type ProgressType string

const (
	ProgressStarted  ProgressType = "started"
	ProgressImported ProgressType = "imported"
	ProgressSkipped  ProgressType = "skipped"
	ProgressFailed   ProgressType = "failed"
	ProgressFinished ProgressType = "finished"
)

// ProgressEvent reports pipeline progress for a single message.
type ProgressEvent struct {
	Type      ProgressType
	Total     int // set on started and finished events
	MessageID string
	Title     string
	Template  margins.Template
	Error     error
}

// ProgressFunc receives progress events. Calls are serialized.
type ProgressFunc func(event ProgressEvent)

// Result summarizes a pipeline run.
type Result struct {
	Imported int
	Skipped  int
	Failed   int
}

// Ingestor runs the import pipeline. Mailbox and Exports are required;
// Messenger, Detector and Seen are optional.
type Ingestor struct {
	Mailbox   margins.Mailbox
	Exports   margins.ExportService
	Messenger margins.Messenger
	Detector  margins.TemplateDetector
	Seen      margins.SeenFilter

	// Concurrency bounds the number of messages processed in parallel.
	Concurrency int
}

// Run processes all unread messages. Per-message failures are counted
// and reported through progress, not returned; Run itself fails only
// when the mailbox cannot be listed or the context is canceled.
func (in *Ingestor) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	messages, err := in.Mailbox.Unread(ctx)
	if err != nil {
		return nil, err
	}

	progress(ProgressEvent{Type: ProgressStarted, Total: len(messages)})

	concurrency := in.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	events := make(chan ProgressEvent, len(messages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, msg := range messages {
			msg := msg
			g.Go(func() error {
				event := in.processMessage(gctx, msg)
				select {
				case events <- event:
				case <-gctx.Done():
					return gctx.Err()
				}
				return nil
			})
		}
		g.Wait()
		close(events)
	}()

	result := &Result{}
	for event := range events {
		switch event.Type {
		case ProgressImported:
			result.Imported++
		case ProgressSkipped:
			result.Skipped++
		case ProgressFailed:
			result.Failed++
		}
		progress(event)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	progress(ProgressEvent{
		Type:  ProgressFinished,
		Total: result.Imported + result.Skipped + result.Failed,
	})

	return result, nil
}

// processMessage runs one message through the pipeline and returns the
// event describing the outcome.
func (in *Ingestor) processMessage(ctx context.Context, msg *margins.Message) ProgressEvent {
	hash := ContentHash(msg.HTML)

	seen, err := in.alreadyImported(ctx, hash)
	if err != nil {
		return ProgressEvent{Type: ProgressFailed, MessageID: msg.ID, Error: err}
	}
	if seen {
		if err := in.Mailbox.MarkProcessed(ctx, msg.ID); err != nil {
			return ProgressEvent{Type: ProgressFailed, MessageID: msg.ID, Error: err}
		}
		return ProgressEvent{Type: ProgressSkipped, MessageID: msg.ID}
	}

	var template margins.Template
	if in.Detector != nil {
		template = in.Detector.Detect(msg.HTML)
	}

	notebook := margins.ParseNotebook(msg.HTML)

	export := &margins.Export{
		Title:       notebook.Title,
		Author:      notebook.Author,
		Source:      msg.ID,
		ContentHash: hash,
		Highlights:  notebook.Highlights,
	}
	if err := in.Exports.CreateExport(ctx, export); err != nil {
		return ProgressEvent{Type: ProgressFailed, MessageID: msg.ID, Error: err}
	}

	if in.Messenger != nil {
		if err := in.Messenger.Send(ctx, margins.RenderMarkdown(notebook)); err != nil {
			return ProgressEvent{Type: ProgressFailed, MessageID: msg.ID, Title: notebook.Title, Error: err}
		}
	}

	if err := in.Mailbox.MarkProcessed(ctx, msg.ID); err != nil {
		return ProgressEvent{Type: ProgressFailed, MessageID: msg.ID, Title: notebook.Title, Error: err}
	}

	if in.Seen != nil {
		in.Seen.Add(hash)
	}

	return ProgressEvent{
		Type:      ProgressImported,
		MessageID: msg.ID,
		Title:     notebook.Title,
		Template:  template,
	}
}

// alreadyImported reports whether an export with the given content hash
// exists. The seen filter is a fast path: a miss is authoritative, a hit
// is confirmed against storage because bloom filters can report false
// positives.
func (in *Ingestor) alreadyImported(ctx context.Context, hash string) (bool, error) {
	if in.Seen != nil && !in.Seen.Test(hash) {
		return false, nil
	}

	exports, err := in.Exports.FindExports(ctx, margins.ExportFilter{ContentHash: &hash, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(exports) > 0, nil
}

// ContentHash returns the dedup key for a raw export document.
func ContentHash(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}
