package margins

import (
	"regexp"
	"strings"
)

// Class markers shared by the known export templates. Each highlight or
// note is rendered as a heading block (metadata line) followed by a body
// block (content line).
const (
	headingMarker = "noteHeading"
	bodyMarker    = "noteText"
	blockClose    = "</div>"
)

// Title and author candidates, tried in order with the first match winning.
// The newer export wraps the title in a notebookFor block, the older one in
// a bookTitle block; the document title tag is the generic fallback.
// Captures run to the first closing tag and go through Normalize.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)class=["']?notebookFor["']?[^>]*>(.*?)</`),
	regexp.MustCompile(`(?is)class=["']?bookTitle["']?[^>]*>(.*?)</`),
	regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`),
}

var authorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)class=["']?authors["']?[^>]*>(.*?)</`),
	regexp.MustCompile(`(?is)class=["']?subtitle["']?[^>]*>(.*?)</`),
	regexp.MustCompile(`(?is)<meta[^>]*name=["']?author["']?[^>]*content=["']([^"']*)["']`),
}

// noteKeywordRe classifies a heading as a note block: the keyword at the
// start, word-bounded, so "Notebook" does not match.
var noteKeywordRe = regexp.MustCompile(`(?i)^note\b`)

// Block is one heading/body pair found in the raw document.
type Block struct {
	Heading string // raw inner markup of the heading block
	Body    string // raw inner markup of the body block
}

// ScanBlocks walks the raw document once, in order, pairing each heading
// block with the body block that follows it. Each capture runs from the end
// of the marker's tag to the first block close, and scanning resumes after
// the consumed pair. A heading with no body before the next heading is
// dropped.
func ScanBlocks(doc string) []Block {
	var blocks []Block
	pos := 0
	for {
		heading, headingEnd, ok := nextBlock(doc, pos, headingMarker)
		if !ok {
			return blocks
		}

		// The body must belong to this heading: if another heading starts
		// first, the current one has no content.
		rest := doc[headingEnd:]
		nextHeading := strings.Index(rest, headingMarker)
		nextBody := strings.Index(rest, bodyMarker)
		if nextHeading >= 0 && (nextBody < 0 || nextHeading < nextBody) {
			pos = headingEnd
			continue
		}

		body, bodyEnd, ok := nextBlock(doc, headingEnd, bodyMarker)
		if !ok {
			return blocks
		}
		blocks = append(blocks, Block{Heading: heading, Body: body})
		pos = bodyEnd
	}
}

// nextBlock finds the next occurrence of marker at or after pos and returns
// the content between the end of the marker's tag and the first block
// close, along with the offset just past that close.
func nextBlock(doc string, pos int, marker string) (content string, end int, ok bool) {
	at := strings.Index(doc[pos:], marker)
	if at < 0 {
		return "", 0, false
	}
	at += pos

	tagEnd := strings.IndexByte(doc[at:], '>')
	if tagEnd < 0 {
		return "", 0, false
	}
	start := at + tagEnd + 1

	stop := strings.Index(doc[start:], blockClose)
	if stop < 0 {
		return "", 0, false
	}
	return doc[start : start+stop], start + stop + len(blockClose), true
}

// ParseNotebook extracts a Notebook from a raw export document. It never
// fails: unrecognized or malformed markup degrades to the whole-document
// fallback instead of producing an error, so the result is usable for any
// input.
func ParseNotebook(doc string) *Notebook {
	nb := &Notebook{
		Title:  firstMatch(doc, titlePatterns),
		Author: firstMatch(doc, authorPatterns),
	}
	if nb.Title == "" {
		nb.Title = DefaultTitle
	}

	blocks := ScanBlocks(doc)
	for _, b := range blocks {
		heading := Normalize(b.Heading)
		h := &Highlight{
			Text:     Normalize(b.Body),
			Color:    ExtractColor(heading),
			Page:     ExtractPage(heading),
			Location: ExtractLocation(heading),
		}
		if noteKeywordRe.MatchString(heading) {
			nb.Highlights = attachNote(nb.Highlights, h)
		} else {
			nb.Highlights = append(nb.Highlights, h)
		}
	}

	// Template wholly unrecognized: keep the content as a single entry
	// rather than return an empty notebook for a non-empty document.
	if len(blocks) == 0 {
		if text := Normalize(doc); text != "" {
			nb.Highlights = append(nb.Highlights, &Highlight{Text: text})
		}
	}

	return nb
}

// attachNote merges a note block into the highlight list. A location match
// wins, scanning from the most recently added highlight backward; otherwise
// the note attaches to the last highlight. With no highlight at all the
// note is kept as a standalone entry instead of being dropped.
func attachNote(highlights []*Highlight, note *Highlight) []*Highlight {
	if len(highlights) == 0 {
		return append(highlights, note)
	}

	target := highlights[len(highlights)-1]
	if note.Location != "" {
		for i := len(highlights) - 1; i >= 0; i-- {
			if highlights[i].Location == note.Location {
				target = highlights[i]
				break
			}
		}
	}

	target.Note = note.Text
	if target.Page == "" {
		target.Page = note.Page
	}
	return highlights
}

// firstMatch returns the normalized capture of the first pattern that
// produces non-empty text, or empty when none does.
func firstMatch(doc string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(doc)
		if m == nil {
			continue
		}
		if text := Normalize(m[1]); text != "" {
			return text
		}
	}
	return ""
}
