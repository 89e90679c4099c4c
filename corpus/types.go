// Package corpus provides read-only access to the Belgian legislation
// snapshot: statute documents, their provisions, historical provision
// versions, and EU cross-references.
//
// The underlying SQLite database is built and maintained out-of-process by
// the ingestion pipeline. Every store in this package treats it as an
// immutable snapshot; nothing here writes.
package corpus

// Document statuses as recorded by the ingestion pipeline.
const (
	StatusInForce       = "in_force"
	StatusAmended       = "amended"
	StatusRepealed      = "repealed"
	StatusNotYetInForce = "not_yet_in_force"
)

// LegalDocument is a statute (one language edition) in the corpus.
// ID follows the canonical grammar (loi|wet)-YYYY-MM-DD-NNNNNNNNNN-(fr|nl).
type LegalDocument struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	IssuedDate  string `json:"issued_date,omitempty"`
	InForceDate string `json:"in_force_date,omitempty"`
	URL         string `json:"url,omitempty"`
	Language    string `json:"language,omitempty"`
	NUMAC       string `json:"numac,omitempty"`
}

// Provision is an article-level unit of statute text. Rows sourced from the
// current (non-temporal) table carry nil ValidFrom/ValidTo; rows sourced
// from the version table carry at least one bound of their validity
// interval [valid_from, valid_to).
type Provision struct {
	DocumentID     string  `json:"document_id"`
	DocumentTitle  string  `json:"document_title"`
	DocumentStatus string  `json:"document_status"`
	ProvisionRef   string  `json:"provision_ref"`
	Chapter        string  `json:"chapter,omitempty"`
	Section        string  `json:"section"`
	Title          string  `json:"title,omitempty"`
	Content        string  `json:"content"`
	ValidFrom      *string `json:"valid_from"`
	ValidTo        *string `json:"valid_to"`
}

// CurrencyReport describes whether a statute is current, optionally
// evaluated at an as-of date. Historical repeal dates are not tracked in
// the dataset, so StatusAsOf uses the current repeal status.
type CurrencyReport struct {
	DocumentID      string   `json:"document_id"`
	Title           string   `json:"title"`
	Status          string   `json:"status"`
	Type            string   `json:"type"`
	IssuedDate      string   `json:"issued_date,omitempty"`
	InForceDate     string   `json:"in_force_date,omitempty"`
	IsCurrent       bool     `json:"is_current"`
	AsOfDate        string   `json:"as_of_date,omitempty"`
	StatusAsOf      string   `json:"status_as_of,omitempty"`
	IsInForceAsOf   *bool    `json:"is_in_force_as_of,omitempty"`
	ProvisionExists *bool    `json:"provision_exists,omitempty"`
	Warnings        []string `json:"warnings"`
}
