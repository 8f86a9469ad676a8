package main

import (
	"fmt"

	"github.com/fwojciec/margins"
)

// Run executes the send command.
func (c *SendCmd) Run(deps *Dependencies) error {
	export, err := deps.Exports.FindExportByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", margins.ErrorMessage(err))
		return err
	}

	report := margins.RenderMarkdown(export.Notebook())
	if err := deps.Messenger.Send(deps.Ctx, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", margins.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Sent %q (%d highlights)\n", export.Title, len(export.Highlights))
	return nil
}
