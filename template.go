package margins

// Template identifies which known export template produced a document.
// Detection is advisory: the scanner handles both known templates with one
// marker set and unknown documents degrade to the whole-document fallback.
type Template string

// Known export templates.
const (
	TemplateUnknown  Template = ""
	TemplateNotebook Template = "notebook" // notebookFor-era exports
	TemplateClassic  Template = "classic"  // bookTitle-era exports
)

// TemplateDetector identifies the export template of a raw document.
type TemplateDetector interface {
	Detect(html string) Template
}
