package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/margins/cmd/margins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows help when no command given", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = ":memory:"
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "margins")
	})

	t.Run("shows help for help command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = ":memory:"
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Commands:")
	})

	t.Run("lists an empty archive", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = ":memory:"
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No exports found")
	})

	t.Run("parses a local file without a database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = "/nonexistent/never-opened.db"
		stdout := &bytes.Buffer{}

		file := writeTestFile(t, parseTestDocument)
		err := m.Run(context.Background(), []string{"parse", file}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Atlas")
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = ":memory:"

		err := m.Run(context.Background(), []string{"bogus"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})
}
