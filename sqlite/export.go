package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/margins"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ margins.ExportService = (*ExportService)(nil)

// ExportService implements margins.ExportService using SQLite.
type ExportService struct {
	db *DB
}

// NewExportService creates a new ExportService.
func NewExportService(db *DB) *ExportService {
	return &ExportService{db: db}
}

// CreateExport persists a new export and its highlights in one transaction.
func (s *ExportService) CreateExport(ctx context.Context, export *margins.Export) error {
	if err := export.Validate(); err != nil {
		return err
	}

	export.ID = uuid.New().String()
	export.ImportedAt = time.Now().UTC()
	export.HighlightCount = len(export.Highlights)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO exports (id, title, author, source, content_hash, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, export.ID, export.Title, export.Author, export.Source, export.ContentHash,
		export.ImportedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, h := range export.Highlights {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO highlights (export_id, position, text, note, color, page, location)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, export.ID, i, h.Text, h.Note, string(h.Color), h.Page, h.Location)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindExportByID retrieves an export with its highlights in reading order.
func (s *ExportService) FindExportByID(ctx context.Context, id string) (*margins.Export, error) {
	var export margins.Export
	var importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, author, source, content_hash, imported_at
		FROM exports
		WHERE id = ?
	`, id).Scan(&export.ID, &export.Title, &export.Author, &export.Source,
		&export.ContentHash, &importedAt)

	if err == sql.ErrNoRows {
		return nil, margins.Errorf(margins.ENOTFOUND, "export not found")
	}
	if err != nil {
		return nil, err
	}

	export.ImportedAt, err = parseRFC3339(importedAt, "imported_at")
	if err != nil {
		return nil, err
	}

	export.Highlights, err = s.findHighlights(ctx, id)
	if err != nil {
		return nil, err
	}
	export.HighlightCount = len(export.Highlights)

	return &export, nil
}

// FindExports retrieves exports matching the filter, most recent first.
// Highlight rows are not loaded; HighlightCount is.
func (s *ExportService) FindExports(ctx context.Context, filter margins.ExportFilter) ([]*margins.Export, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, title, author, source, content_hash, imported_at,
			(SELECT COUNT(*) FROM highlights WHERE export_id = exports.id) AS highlight_count
		FROM exports WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY imported_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exports []*margins.Export
	for rows.Next() {
		var export margins.Export
		var importedAt string

		if err := rows.Scan(&export.ID, &export.Title, &export.Author, &export.Source,
			&export.ContentHash, &importedAt, &export.HighlightCount); err != nil {
			return nil, err
		}

		export.ImportedAt, err = parseRFC3339(importedAt, "imported_at")
		if err != nil {
			return nil, err
		}

		exports = append(exports, &export)
	}

	return exports, rows.Err()
}

// DeleteExport permanently removes an export; highlights cascade.
func (s *ExportService) DeleteExport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM exports WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return margins.Errorf(margins.ENOTFOUND, "export not found")
	}

	return nil
}

// findHighlights loads an export's highlights ordered by position.
func (s *ExportService) findHighlights(ctx context.Context, exportID string) ([]*margins.Highlight, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT text, note, color, page, location
		FROM highlights
		WHERE export_id = ?
		ORDER BY position
	`, exportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var highlights []*margins.Highlight
	for rows.Next() {
		var h margins.Highlight
		var color string
		if err := rows.Scan(&h.Text, &h.Note, &color, &h.Page, &h.Location); err != nil {
			return nil, err
		}
		h.Color = margins.Color(color)
		highlights = append(highlights, &h)
	}

	return highlights, rows.Err()
}
