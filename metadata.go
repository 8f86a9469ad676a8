package margins

import (
	"regexp"
	"strings"
)

// Heading metadata patterns. Keywords and color names match
// case-insensitively; the digit/hyphen tokens match literally so ranges
// like "123-125" are captured verbatim.
var (
	locationRe = regexp.MustCompile(`(?i)\blocation\s+([0-9][0-9-]*)`)
	pageRe     = regexp.MustCompile(`(?i)\bpage\s+([0-9][0-9-]*)`)
	colorRe    = regexp.MustCompile(`(?i)\(\s*(yellow|blue|pink|orange|green)\s*\)`)
)

// ExtractLocation returns the first location token in a normalized heading,
// or empty when absent.
func ExtractLocation(heading string) string {
	if m := locationRe.FindStringSubmatch(heading); m != nil {
		return m[1]
	}
	return ""
}

// ExtractPage returns the first page token in a normalized heading, or
// empty when absent.
func ExtractPage(heading string) string {
	if m := pageRe.FindStringSubmatch(heading); m != nil {
		return m[1]
	}
	return ""
}

// ExtractColor returns the first parenthesized highlight color in a
// normalized heading, in canonical casing, or empty when no recognized
// color is present.
func ExtractColor(heading string) Color {
	m := colorRe.FindStringSubmatch(heading)
	if m == nil {
		return ""
	}
	match := strings.ToLower(m[1])
	for _, c := range Colors {
		if strings.ToLower(string(c)) == match {
			return c
		}
	}
	return ""
}
