package types

// ScoreResult is a single resolved sheet-music reference. Optional fields are
// left empty when the producing tier does not know them; the handler
// serializes empty strings rather than omitting the keys.
type ScoreResult struct {
	Title       string `json:"title"`
	Composer    string `json:"composer,omitempty"`
	SourceURL   string `json:"source_url"`
	PDFURL      string `json:"pdf_url"`
	Description string `json:"description,omitempty"`
	Opus        string `json:"opus,omitempty"`
	// Source labels the resolution tier that produced the record.
	Source string `json:"source,omitempty"`
}
