package main

import (
	"fmt"

	"github.com/fwojciec/margins"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return margins.Errorf(margins.EINVALID, "use --force to confirm deletion")
	}

	export, err := deps.Exports.FindExportByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", margins.ErrorMessage(err))
		return err
	}

	if err := deps.Exports.DeleteExport(deps.Ctx, export.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", margins.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted export %q\n", export.Title)
	return nil
}
