package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/margins"
	"github.com/fwojciec/margins/goquery"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q: %v\n", c.File, err)
		return err
	}
	doc := string(data)

	template := deps.Detector.Detect(doc)
	if template == margins.TemplateUnknown {
		fmt.Fprintln(deps.Stdout, "Template:   unknown")
	} else {
		fmt.Fprintf(deps.Stdout, "Template:   %s\n", template)
	}

	notebook := margins.ParseNotebook(doc)
	fmt.Fprintf(deps.Stdout, "Title:      %s\n", notebook.Title)
	if notebook.Author != "" {
		fmt.Fprintf(deps.Stdout, "Author:     %s\n", notebook.Author)
	}
	fmt.Fprintf(deps.Stdout, "Highlights: %d\n", len(notebook.Highlights))

	// Raw block counts help diagnose documents where the structured
	// scanner found fewer entries than expected.
	if d, ok := deps.Detector.(*goquery.Detector); ok {
		headings, bodies := d.Survey(doc)
		fmt.Fprintf(deps.Stdout, "Headings:   %d\n", headings)
		fmt.Fprintf(deps.Stdout, "Bodies:     %d\n", bodies)
	}

	return nil
}
