package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/margins"
	main "github.com/fwojciec/margins/cmd/margins"
	"github.com/fwojciec/margins/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{ID: "exp-123"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, margins.EINVALID, margins.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes the export", func(t *testing.T) {
		t.Parallel()

		var deleted string
		exports := &mock.ExportService{
			FindExportByIDFn: func(_ context.Context, id string) (*margins.Export, error) {
				return &margins.Export{ID: id, Title: "Atlas"}, nil
			},
			DeleteExportFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Exports: exports,
		}

		cmd := &main.DeleteCmd{ID: "exp-123", Force: true}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "exp-123", deleted)
		assert.Contains(t, stdout.String(), `Deleted export "Atlas"`)
	})

	t.Run("returns error when export not found", func(t *testing.T) {
		t.Parallel()

		exports := &mock.ExportService{
			FindExportByIDFn: func(_ context.Context, id string) (*margins.Export, error) {
				return nil, margins.Errorf(margins.ENOTFOUND, "export not found")
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Exports: exports,
		}

		cmd := &main.DeleteCmd{ID: "missing", Force: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, margins.ENOTFOUND, margins.ErrorCode(err))
	})
}
