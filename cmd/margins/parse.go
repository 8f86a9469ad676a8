package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/margins"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q: %v\n", c.File, err)
		return err
	}

	if c.Raw {
		markdown, err := deps.Converter.Convert(string(data))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", margins.ErrorMessage(err))
			return err
		}
		fmt.Fprint(deps.Stdout, markdown)
		return nil
	}

	notebook := margins.ParseNotebook(string(data))
	fmt.Fprint(deps.Stdout, margins.RenderMarkdown(notebook))
	return nil
}
