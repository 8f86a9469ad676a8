package main

import (
	"fmt"

	"github.com/fwojciec/margins"
	"github.com/fwojciec/margins/etree"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	export, err := deps.Exports.FindExportByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", margins.ErrorMessage(err))
		return err
	}

	if c.Atom {
		feed, err := etree.RenderFeed(export)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", margins.ErrorMessage(err))
			return err
		}
		fmt.Fprint(deps.Stdout, feed)
		return nil
	}

	fmt.Fprint(deps.Stdout, margins.RenderMarkdown(export.Notebook()))
	return nil
}
