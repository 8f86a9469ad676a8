package main

import (
	"fmt"

	"github.com/fwojciec/margins/ingest"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d unread messages\n", event.Total)
		case ingest.ProgressImported:
			fmt.Fprintf(deps.Stdout, "  imported %s (%s)\n", event.Title, event.MessageID)
		case ingest.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s: already imported\n", event.MessageID)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.MessageID, event.Error)
		}
	}

	result, err := deps.Ingestor.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d, skipped %d, failed %d\n",
		result.Imported, result.Skipped, result.Failed)

	if result.Failed > 0 {
		return fmt.Errorf("%d messages failed to import", result.Failed)
	}
	return nil
}
