// Package etree renders archived exports as Atom feeds.
package etree

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/fwojciec/margins"
)

const atomNS = "http://www.w3.org/2005/Atom"

// RenderFeed renders an export as an Atom feed document with one entry
// per highlight. Output is deterministic for a given export.
func RenderFeed(export *margins.Export) (string, error) {
	if export == nil {
		return "", margins.Errorf(margins.EINVALID, "export required")
	}

	updated := export.ImportedAt.UTC().Format(time.RFC3339)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	feed := doc.CreateElement("feed")
	feed.CreateAttr("xmlns", atomNS)
	feed.CreateElement("id").SetText("urn:margins:export:" + export.ID)
	feed.CreateElement("title").SetText(export.Title)
	feed.CreateElement("updated").SetText(updated)
	if export.Author != "" {
		author := feed.CreateElement("author")
		author.CreateElement("name").SetText(export.Author)
	}

	for i, h := range export.Highlights {
		entry := feed.CreateElement("entry")
		entry.CreateElement("id").SetText(fmt.Sprintf("urn:margins:export:%s:%d", export.ID, i+1))
		entry.CreateElement("title").SetText(fmt.Sprintf("%s: highlight %d", export.Title, i+1))
		entry.CreateElement("updated").SetText(updated)

		content := entry.CreateElement("content")
		content.CreateAttr("type", "text")
		content.SetText(entryContent(h))
	}

	doc.Indent(2)
	return doc.WriteToString()
}

func entryContent(h *margins.Highlight) string {
	if h.Note == "" {
		return h.Text
	}
	if h.Text == "" {
		return "Note: " + h.Note
	}
	return h.Text + "\n\nNote: " + h.Note
}
