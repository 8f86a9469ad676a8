package etree_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/margins"
	"github.com/fwojciec/margins/etree"
)

func testExport() *margins.Export {
	return &margins.Export{
		ID:         "abc-123",
		Title:      "The Idea of the Brain",
		Author:     "Matthew Cobb",
		ImportedAt: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
		Highlights: []*margins.Highlight{
			{Text: "First passage", Color: margins.ColorYellow, Page: "12"},
			{Text: "Second passage", Note: "check this"},
		},
	}
}

func TestRenderFeed(t *testing.T) {
	t.Parallel()

	t.Run("renders one entry per highlight", func(t *testing.T) {
		t.Parallel()

		got, err := etree.RenderFeed(testExport())

		require.NoError(t, err)
		assert.Contains(t, got, `<feed xmlns="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, got, "<id>urn:margins:export:abc-123</id>")
		assert.Contains(t, got, "<title>The Idea of the Brain</title>")
		assert.Contains(t, got, "<name>Matthew Cobb</name>")
		assert.Contains(t, got, "<id>urn:margins:export:abc-123:1</id>")
		assert.Contains(t, got, "<id>urn:margins:export:abc-123:2</id>")
		assert.Contains(t, got, "<title>The Idea of the Brain: highlight 2</title>")
		assert.Contains(t, got, "<updated>2025-06-02T10:30:00Z</updated>")
	})

	t.Run("appends notes to entry content", func(t *testing.T) {
		t.Parallel()

		got, err := etree.RenderFeed(testExport())

		require.NoError(t, err)
		assert.Contains(t, got, "Second passage\n\nNote: check this")
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := etree.RenderFeed(testExport())
		require.NoError(t, err)
		second, err := etree.RenderFeed(testExport())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects nil export", func(t *testing.T) {
		t.Parallel()

		_, err := etree.RenderFeed(nil)

		require.Error(t, err)
		assert.Equal(t, margins.EINVALID, margins.ErrorCode(err))
	})
}
