package margins

import (
	"context"
	"time"
)

// Export is an archived parse result: one notebook export document, its
// extracted highlights, and enough provenance to dedup re-deliveries.
type Export struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Source      string    `json:"source"` // mailbox message ID or file path
	ContentHash string    `json:"contentHash"`
	ImportedAt  time.Time `json:"importedAt"`

	// Highlights in reading order. Populated by FindExportByID; list
	// queries leave it nil and set HighlightCount instead.
	Highlights []*Highlight `json:"highlights,omitempty"`

	HighlightCount int `json:"highlightCount"`
}

// Notebook returns the export's content as a Notebook value for rendering.
func (e *Export) Notebook() *Notebook {
	return &Notebook{
		Title:      e.Title,
		Author:     e.Author,
		Highlights: e.Highlights,
	}
}

// Validate returns an error if the export contains invalid fields.
func (e *Export) Validate() error {
	if e.Title == "" {
		return Errorf(EINVALID, "export title required")
	}
	if e.ContentHash == "" {
		return Errorf(EINVALID, "export content hash required")
	}
	return nil
}

// ExportService represents a service for managing archived exports.
type ExportService interface {
	// CreateExport persists a new export and its highlights.
	CreateExport(ctx context.Context, export *Export) error

	// FindExportByID retrieves an export with its highlights in reading
	// order. Returns ENOTFOUND if the export does not exist.
	FindExportByID(ctx context.Context, id string) (*Export, error)

	// FindExports retrieves exports matching the filter, most recent
	// first, with highlight counts but without highlight rows.
	FindExports(ctx context.Context, filter ExportFilter) ([]*Export, error)

	// DeleteExport permanently removes an export and its highlights.
	// Returns ENOTFOUND if the export does not exist.
	DeleteExport(ctx context.Context, id string) error
}

// ExportFilter represents a filter for FindExports.
type ExportFilter struct {
	ID          *string `json:"id"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
