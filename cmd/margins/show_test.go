package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/margins"
	main "github.com/fwojciec/margins/cmd/margins"
	"github.com/fwojciec/margins/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showTestExport() *margins.Export {
	return &margins.Export{
		ID:         "exp-123",
		Title:      "Atlas",
		Author:     "J. Doe",
		ImportedAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Highlights: []*margins.Highlight{
			{Text: "Sample", Color: margins.ColorYellow, Page: "12", Location: "340"},
		},
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the markdown report", func(t *testing.T) {
		t.Parallel()

		exports := &mock.ExportService{
			FindExportByIDFn: func(_ context.Context, id string) (*margins.Export, error) {
				assert.Equal(t, "exp-123", id)
				return showTestExport(), nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Exports: exports,
		}

		cmd := &main.ShowCmd{ID: "exp-123"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "# Atlas")
		assert.Contains(t, output, "by J. Doe")
		assert.Contains(t, output, "1. Sample (Yellow · Page 12 · Loc 340)")
	})

	t.Run("renders an atom feed with --atom", func(t *testing.T) {
		t.Parallel()

		exports := &mock.ExportService{
			FindExportByIDFn: func(_ context.Context, id string) (*margins.Export, error) {
				return showTestExport(), nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Exports: exports,
		}

		cmd := &main.ShowCmd{ID: "exp-123", Atom: true}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, `<feed xmlns="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, output, "urn:margins:export:exp-123")
	})

	t.Run("returns error when export not found", func(t *testing.T) {
		t.Parallel()

		exports := &mock.ExportService{
			FindExportByIDFn: func(_ context.Context, id string) (*margins.Export, error) {
				return nil, margins.Errorf(margins.ENOTFOUND, "export not found")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Exports: exports,
		}

		cmd := &main.ShowCmd{ID: "missing"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, margins.ENOTFOUND, margins.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
