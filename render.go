package margins

import (
	"strconv"
	"strings"
)

// RenderMarkdown turns a notebook into a deterministic markdown report.
// The render is total: any notebook value produces output with no error
// conditions and no side effects.
func RenderMarkdown(nb *Notebook) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(nb.Title)
	b.WriteByte('\n')
	if nb.Author != "" {
		b.WriteString("by ")
		b.WriteString(nb.Author)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for i, h := range nb.Highlights {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(h.Text)
		if meta := metadataSuffix(h); meta != "" {
			b.WriteString(" (")
			b.WriteString(meta)
			b.WriteByte(')')
		}
		b.WriteByte('\n')
		if h.Note != "" {
			b.WriteString("   > ")
			b.WriteString(h.Note)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// metadataSuffix joins present metadata fields in fixed order with a
// middle-dot separator. Empty when no field is present, so entries without
// metadata carry no parenthetical at all.
func metadataSuffix(h *Highlight) string {
	var parts []string
	if h.Color != "" {
		parts = append(parts, string(h.Color))
	}
	if h.Page != "" {
		parts = append(parts, "Page "+h.Page)
	}
	if h.Location != "" {
		parts = append(parts, "Loc "+h.Location)
	}
	return strings.Join(parts, " · ")
}
