package margins

import "strings"

// entityReplacements is the fixed entity set the export templates emit,
// decoded in this order. &amp; must decode last so already-encoded
// entities ("&amp;lt;") yield the literal text ("&lt;") instead of
// re-expanding.
var entityReplacements = []struct{ entity, text string }{
	{"&nbsp;", " "},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&apos;", "'"},
	{"&amp;", "&"},
}

// Normalize strips markup tags from a fragment, decodes the fixed entity
// set, and collapses whitespace runs to single spaces. Any input is valid;
// there are no error conditions.
func Normalize(fragment string) string {
	text := stripTags(fragment)
	for _, r := range entityReplacements {
		text = strings.ReplaceAll(text, r.entity, r.text)
	}
	return strings.Join(strings.Fields(text), " ")
}

// stripTags replaces each <...> run with a single space: non-greedy, no
// nesting awareness. An unterminated tag is dropped through the end of the
// fragment.
func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for {
		open := strings.IndexByte(s, '<')
		if open < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:open])
		b.WriteByte(' ')
		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			return b.String()
		}
		s = s[open+end+1:]
	}
}
