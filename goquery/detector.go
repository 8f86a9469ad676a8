// Package goquery provides DOM-based inspection of notebook export
// documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/margins"
)

var _ margins.TemplateDetector = (*Detector)(nil)

// Detector identifies which export template produced a document by looking
// for template-specific class markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified template.
// Returns TemplateUnknown if no known marker is present.
func (d *Detector) Detect(html string) margins.Template {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return margins.TemplateUnknown
	}

	// notebookFor is unique to the newer export.
	if doc.Find(".notebookFor").Length() > 0 {
		return margins.TemplateNotebook
	}

	// The older export titles the document with bookTitle and renders
	// entries with the same heading/body classes as the newer one.
	if doc.Find(".bookTitle").Length() > 0 || doc.Find(".noteHeading").Length() > 0 {
		return margins.TemplateClassic
	}

	return margins.TemplateUnknown
}

// Survey reports how many heading and body blocks the document carries.
// The counts are advisory (the scanner operates on the raw markup, not the
// repaired DOM) but a mismatch is a useful signal that an export will lose
// entries.
func (d *Detector) Survey(html string) (headings, bodies int) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, 0
	}
	return doc.Find(".noteHeading").Length(), doc.Find(".noteText").Length()
}
