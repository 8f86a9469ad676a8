package main

import (
	"fmt"

	"github.com/fwojciec/margins"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	exports, err := deps.Exports.FindExports(deps.Ctx, margins.ExportFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", margins.ErrorMessage(err))
		return err
	}

	if len(exports) == 0 {
		fmt.Fprintln(deps.Stdout, "No exports found. Use 'margins import' to ingest some.")
		return nil
	}

	for _, e := range exports {
		title := e.Title
		if e.Author != "" {
			title += " by " + e.Author
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d highlights\n",
			e.ID, e.ImportedAt.Format("2006-01-02"), title, e.HighlightCount)
	}

	return nil
}
