// Package citation parses, formats, and validates Belgian statute citations.
//
// Supported citation shapes:
//
//	"Loi du 2 fevrier 1994, art. 1"
//	"Wet van 2 februari 1994, art. 1"
//	"loi-1994-02-02-1994009284-fr, art. 1"
//	"art. 1, loi-1994-02-02-1994009284-fr"
package citation

// Citation types produced by the parser.
const (
	TypeStatute = "statute"
	TypeUnknown = "unknown"
)

// ParsedCitation is the structured form of a free-text citation.
//
// Invariant: Valid=false implies Section and Title are empty and Error is
// set; Valid=true implies Section is set.
type ParsedCitation struct {
	Valid bool   `json:"valid"`
	Type  string `json:"type"`

	// Title is either a canonical statute id or the free-text document title,
	// exactly as captured (diacritics preserved).
	Title      string `json:"title,omitempty"`
	Year       int    `json:"year,omitempty"`
	Section    string `json:"section,omitempty"`
	Subsection string `json:"subsection,omitempty"`
	Paragraph  string `json:"paragraph,omitempty"`

	Error string `json:"error,omitempty"`
}

// Style selects how a parsed citation is rendered back to text.
type Style string

const (
	// StyleFull renders "<title>, art. <pinpoint>".
	StyleFull Style = "full"
	// StyleShort renders "art. <pinpoint> <title>".
	StyleShort Style = "short"
	// StylePinpoint renders "art. <pinpoint>" without the document title.
	StylePinpoint Style = "pinpoint"
)

// ValidationResult is the end-to-end validity report for a citation.
// Domain misses (unknown document, missing article, repealed statute) are
// reported as data plus warnings, never as errors.
type ValidationResult struct {
	Citation        ParsedCitation `json:"citation"`
	DocumentExists  bool           `json:"document_exists"`
	ProvisionExists bool           `json:"provision_exists"`
	DocumentTitle   string         `json:"document_title,omitempty"`
	DocumentURL     string         `json:"document_url,omitempty"`
	Status          string         `json:"status,omitempty"`
	Warnings        []string       `json:"warnings"`
}
