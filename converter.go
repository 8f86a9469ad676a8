package margins

// Converter converts HTML to Markdown. It backs the raw-transcript path
// for documents the structured scanner cannot represent.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
