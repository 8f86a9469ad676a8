// Package fs writes rendered reports to the local filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/margins"
)

// Compile-time interface verification.
var _ margins.Messenger = (*Reporter)(nil)

// Reporter saves each report as a markdown file in a directory. The file
// name is derived from the report's first line.
type Reporter struct {
	dir string
}

// NewReporter creates a Reporter that writes into dir. The directory is
// created on first use if it does not exist.
func NewReporter(dir string) *Reporter {
	return &Reporter{dir: dir}
}

// Send writes the report to a new file. Existing files are never
// overwritten; a numeric suffix is appended instead.
func (r *Reporter) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	base := FileName(text)
	path := filepath.Join(r.dir, base+".md")
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(r.dir, fmt.Sprintf("%s-%d.md", base, i))
	}

	return os.WriteFile(path, []byte(text), 0o644)
}

// FileName derives a filesystem-safe slug from the report's first line.
// Leading markdown heading markers are stripped, letters and digits are
// lowercased, and everything else collapses to single hyphens.
func FileName(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimLeft(line, "# ")

	var b strings.Builder
	lastHyphen := true
	for _, r := range line {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "report"
	}
	return slug
}
