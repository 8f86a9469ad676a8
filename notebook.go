package margins

// Color identifies a highlight color from the fixed set the export
// templates emit.
type Color string

// Highlight colors in canonical casing. Extraction is case-insensitive but
// stored values always use these forms.
const (
	ColorYellow Color = "Yellow"
	ColorBlue   Color = "Blue"
	ColorPink   Color = "Pink"
	ColorOrange Color = "Orange"
	ColorGreen  Color = "Green"
)

// Colors lists all recognized highlight colors.
var Colors = []Color{ColorYellow, ColorBlue, ColorPink, ColorOrange, ColorGreen}

// Highlight is one extracted passage from a notebook export. Optional
// fields are empty when absent. Page and Location stay free-form strings so
// ranges ("123-125") and roman numerals round-trip unchanged.
type Highlight struct {
	Text     string `json:"text"`
	Note     string `json:"note,omitempty"`
	Color    Color  `json:"color,omitempty"`
	Page     string `json:"page,omitempty"`
	Location string `json:"location,omitempty"`
}

// DefaultTitle is used when no title pattern matches the document.
const DefaultTitle = "Kindle Notebook"

// Notebook is the result of parsing one export document. Highlights keep
// their order of first appearance in the source, which matches reading
// order and must survive through rendering.
type Notebook struct {
	Title      string       `json:"title"`
	Author     string       `json:"author,omitempty"`
	Highlights []*Highlight `json:"highlights"`
}
