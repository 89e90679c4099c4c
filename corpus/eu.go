package corpus

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ansvar-systems/belgian-law-mcp/errors"
)

// EUDocument is an EU-level act (regulation or directive) referenced by
// Belgian statutes.
type EUDocument struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	ShortName   string `json:"short_name,omitempty"`
	CelexNumber string `json:"celex_number,omitempty"`
	URLEurLex   string `json:"url_eur_lex,omitempty"`
	InForce     bool   `json:"in_force"`
}

// EUReference links a Belgian statute (optionally a specific provision) to
// an EU document.
type EUReference struct {
	EUDocumentID            string `json:"eu_document_id"`
	EUArticle               string `json:"article,omitempty"`
	ReferenceType           string `json:"reference_type"`
	ReferenceContext        string `json:"reference_context,omitempty"`
	IsPrimaryImplementation bool   `json:"is_primary_implementation"`
	ImplementationStatus    string `json:"implementation_status,omitempty"`
}

// EUBasisResult groups the EU documents a Belgian statute references.
type EUBasisResult struct {
	DocumentID  string        `json:"document_id"`
	EUDocuments []EUDocument  `json:"eu_documents"`
	References  []EUReference `json:"references,omitempty"`
}

// Implementation is a Belgian statute implementing an EU document.
type Implementation struct {
	DocumentID              string `json:"document_id"`
	Title                   string `json:"title"`
	Status                  string `json:"status"`
	ReferenceType           string `json:"reference_type"`
	IsPrimaryImplementation bool   `json:"is_primary_implementation"`
	ImplementationStatus    string `json:"implementation_status,omitempty"`
}

// ImplementationsResult groups the Belgian statutes implementing one EU act.
type ImplementationsResult struct {
	EUDocumentID    string           `json:"eu_document_id"`
	Implementations []Implementation `json:"implementations"`
}

// EUSearchParams filters a search over the EU document catalog.
type EUSearchParams struct {
	Query string
	Type  string
	// HasBelgianImplementation, when set, keeps only EU documents with at
	// least one Belgian statute referencing them (true) or none (false).
	HasBelgianImplementation *bool
	Limit                    int
}

// EUSearchResult is an EU document annotated with how many Belgian
// statutes reference it.
type EUSearchResult struct {
	EUDocument
	BelgianStatuteCount int `json:"belgian_statute_count"`
}

// OutdatedReference flags a citation of a repealed EU act, with its
// replacement when the dataset records one.
type OutdatedReference struct {
	EUDocumentID string `json:"eu_document_id"`
	Title        string `json:"title,omitempty"`
	Issue        string `json:"issue"`
	ReplacedBy   string `json:"replaced_by,omitempty"`
}

// ComplianceReport summarizes a statute's EU reference hygiene.
type ComplianceReport struct {
	DocumentID         string              `json:"document_id"`
	ProvisionRef       string              `json:"provision_ref,omitempty"`
	ComplianceStatus   string              `json:"compliance_status"`
	EUReferencesFound  int                 `json:"eu_references_found"`
	Warnings           []string            `json:"warnings"`
	OutdatedReferences []OutdatedReference `json:"outdated_references,omitempty"`
	Recommendations    []string            `json:"recommendations,omitempty"`
}

// Compliance statuses.
const (
	ComplianceCompliant     = "compliant"
	CompliancePartial       = "partial"
	ComplianceUnclear       = "unclear"
	ComplianceNotApplicable = "not_applicable"
)

// EUStore reads the EU cross-reference tables of the corpus.
type EUStore struct {
	db        *sql.DB
	documents *DocumentStore
	logger    *zap.SugaredLogger
}

// NewEUStore creates an EU cross-reference store over the corpus snapshot.
// Logger may be nil for silent operation.
func NewEUStore(db *sql.DB, documents *DocumentStore, logger *zap.SugaredLogger) *EUStore {
	return &EUStore{db: db, documents: documents, logger: logger}
}

// Basis returns the EU documents a Belgian statute references. With
// includeArticles, the individual references (with EU article pinpoints)
// are included as well.
func (s *EUStore) Basis(documentID string, includeArticles bool) (*EUBasisResult, error) {
	resolvedID, err := s.requireDocument(documentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT DISTINCT
			ed.id,
			ed.type,
			COALESCE(ed.title, ''),
			COALESCE(ed.short_name, ''),
			COALESCE(ed.celex_number, ''),
			COALESCE(ed.url_eur_lex, ''),
			COALESCE(ed.in_force, 1)
		FROM eu_documents ed
		JOIN eu_references er ON er.eu_document_id = ed.id
		WHERE er.document_id = ?
		ORDER BY ed.id`, resolvedID)
	if err != nil {
		return nil, errors.Wrap(err, "query EU basis")
	}
	defer rows.Close()

	result := &EUBasisResult{DocumentID: resolvedID, EUDocuments: []EUDocument{}}
	for rows.Next() {
		var doc EUDocument
		var inForce int
		if err := rows.Scan(&doc.ID, &doc.Type, &doc.Title, &doc.ShortName, &doc.CelexNumber, &doc.URLEurLex, &inForce); err != nil {
			return nil, errors.Wrap(err, "scan EU document")
		}
		doc.InForce = inForce != 0
		result.EUDocuments = append(result.EUDocuments, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate EU documents")
	}

	if includeArticles {
		refs, err := s.references(resolvedID, "")
		if err != nil {
			return nil, err
		}
		result.References = refs
	}

	return result, nil
}

// ProvisionBasis returns the EU references attached to one provision of a
// statute.
func (s *EUStore) ProvisionBasis(documentID, provisionRef string) ([]EUReference, error) {
	resolvedID, err := s.requireDocument(documentID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(provisionRef) == "" {
		return nil, errors.NewInvalidRequestError("provision_ref is required")
	}
	return s.references(resolvedID, provisionRef)
}

// Implementations returns the Belgian statutes that reference an EU act.
func (s *EUStore) Implementations(euDocumentID string) (*ImplementationsResult, error) {
	if strings.TrimSpace(euDocumentID) == "" {
		return nil, errors.NewInvalidRequestError("eu_document_id is required")
	}

	rows, err := s.db.Query(`
		SELECT
			ld.id,
			ld.title,
			ld.status,
			er.reference_type,
			COALESCE(er.is_primary_implementation, 0),
			COALESCE(er.implementation_status, '')
		FROM eu_references er
		JOIN legal_documents ld ON ld.id = er.document_id
		WHERE er.eu_document_id = ?
		ORDER BY COALESCE(er.is_primary_implementation, 0) DESC, ld.id`, euDocumentID)
	if err != nil {
		return nil, errors.Wrap(err, "query implementations")
	}
	defer rows.Close()

	result := &ImplementationsResult{EUDocumentID: euDocumentID, Implementations: []Implementation{}}
	for rows.Next() {
		var impl Implementation
		var primary int
		if err := rows.Scan(&impl.DocumentID, &impl.Title, &impl.Status, &impl.ReferenceType, &primary, &impl.ImplementationStatus); err != nil {
			return nil, errors.Wrap(err, "scan implementation")
		}
		impl.IsPrimaryImplementation = primary != 0
		result.Implementations = append(result.Implementations, impl)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate implementations")
	}

	return result, nil
}

// ValidateCompliance checks a statute's EU references: repealed EU acts are
// flagged as outdated (with their replacement, when the amended_by metadata
// parses), primary implementations without status metadata and unknown or
// pending statuses lower the verdict to unclear.
func (s *EUStore) ValidateCompliance(documentID, euDocumentID string) (*ComplianceReport, error) {
	resolvedID, err := s.requireDocument(documentID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			ed.id,
			ed.type,
			COALESCE(ed.title, ''),
			COALESCE(ed.in_force, 1),
			COALESCE(ed.amended_by, ''),
			er.reference_type,
			COALESCE(er.is_primary_implementation, 0),
			COALESCE(er.implementation_status, '')
		FROM eu_documents ed
		JOIN eu_references er ON ed.id = er.eu_document_id
		WHERE er.document_id = ?`
	args := []interface{}{resolvedID}
	if euDocumentID != "" {
		query += ` AND ed.id = ?`
		args = append(args, euDocumentID)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query EU references")
	}
	defer rows.Close()

	report := &ComplianceReport{
		DocumentID: resolvedID,
		Warnings:   []string{},
	}

	for rows.Next() {
		var (
			id, euType, title, amendedBy, refType, implStatus string
			inForce, primary                                  int
		)
		if err := rows.Scan(&id, &euType, &title, &inForce, &amendedBy, &refType, &primary, &implStatus); err != nil {
			return nil, errors.Wrap(err, "scan EU reference")
		}
		report.EUReferencesFound++

		if inForce == 0 {
			issue := fmt.Sprintf("References repealed EU %s %s", euType, id)
			report.Warnings = append(report.Warnings, issue)
			report.OutdatedReferences = append(report.OutdatedReferences, OutdatedReference{
				EUDocumentID: id,
				Title:        title,
				Issue:        issue,
				ReplacedBy:   firstReplacement(amendedBy),
			})
		}

		if primary == 1 && implStatus == "" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Primary implementation of %s lacks implementation_status", id))
			report.Recommendations = append(report.Recommendations, fmt.Sprintf("Add implementation_status metadata for %s", id))
		}

		if implStatus == "unknown" || implStatus == "pending" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Implementation status for %s is %q", id, implStatus))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate EU references")
	}

	if report.EUReferencesFound == 0 {
		report.Recommendations = append(report.Recommendations,
			"No EU references found. If this statute implements EU law, consider adding EU references.")
	}

	switch {
	case report.EUReferencesFound == 0:
		report.ComplianceStatus = ComplianceNotApplicable
	case len(report.OutdatedReferences) > 0:
		report.ComplianceStatus = CompliancePartial
	case len(report.Warnings) > 0:
		report.ComplianceStatus = ComplianceUnclear
	default:
		report.ComplianceStatus = ComplianceCompliant
	}

	return report, nil
}

// SearchImplementations searches the EU document catalog, counting per EU
// act how many distinct Belgian statutes reference it. The query matches
// title, short name, or CELEX number by containment.
func (s *EUStore) SearchImplementations(params EUSearchParams) ([]EUSearchResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	query := `
		SELECT
			ed.id,
			ed.type,
			COALESCE(ed.title, ''),
			COALESCE(ed.short_name, ''),
			COALESCE(ed.celex_number, ''),
			COALESCE(ed.url_eur_lex, ''),
			COALESCE(ed.in_force, 1),
			COUNT(DISTINCT er.document_id) AS belgian_statute_count
		FROM eu_documents ed
		LEFT JOIN eu_references er ON er.eu_document_id = ed.id`
	args := []interface{}{}
	where := []string{}

	if params.Type != "" {
		where = append(where, "ed.type = ?")
		args = append(args, params.Type)
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		where = append(where, "(ed.title LIKE ? OR ed.short_name LIKE ? OR ed.celex_number LIKE ?)")
		pattern := "%" + q + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}

	query += "\n\t\tGROUP BY ed.id"
	if params.HasBelgianImplementation != nil {
		if *params.HasBelgianImplementation {
			query += "\n\t\tHAVING belgian_statute_count > 0"
		} else {
			query += "\n\t\tHAVING belgian_statute_count = 0"
		}
	}
	query += "\n\t\tORDER BY belgian_statute_count DESC, ed.id\n\t\tLIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "search EU implementations")
	}
	defer rows.Close()

	results := []EUSearchResult{}
	for rows.Next() {
		var r EUSearchResult
		var inForce int
		if err := rows.Scan(&r.ID, &r.Type, &r.Title, &r.ShortName, &r.CelexNumber, &r.URLEurLex, &inForce, &r.BelgianStatuteCount); err != nil {
			return nil, errors.Wrap(err, "scan EU search result")
		}
		r.InForce = inForce != 0
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate EU search results")
	}
	return results, nil
}

func (s *EUStore) references(documentID, provisionRef string) ([]EUReference, error) {
	query := `
		SELECT
			er.eu_document_id,
			COALESCE(er.eu_article, ''),
			er.reference_type,
			COALESCE(er.reference_context, ''),
			COALESCE(er.is_primary_implementation, 0),
			COALESCE(er.implementation_status, '')
		FROM eu_references er`
	args := []interface{}{}

	if provisionRef != "" {
		query += `
		JOIN legal_provisions lp ON lp.id = er.provision_id
		WHERE er.document_id = ? AND (lp.provision_ref = ? OR lp.section = ?)`
		args = append(args, documentID, provisionRef, provisionRef)
	} else {
		query += `
		WHERE er.document_id = ?`
		args = append(args, documentID)
	}
	query += ` ORDER BY er.id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query EU references")
	}
	defer rows.Close()

	refs := []EUReference{}
	for rows.Next() {
		var ref EUReference
		var primary int
		if err := rows.Scan(&ref.EUDocumentID, &ref.EUArticle, &ref.ReferenceType, &ref.ReferenceContext, &primary, &ref.ImplementationStatus); err != nil {
			return nil, errors.Wrap(err, "scan EU reference")
		}
		ref.IsPrimaryImplementation = primary != 0
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate EU references")
	}
	return refs, nil
}

// requireDocument resolves a statute identifier and fails hard when the
// document is unknown, since every EU query is scoped to one statute.
func (s *EUStore) requireDocument(documentID string) (string, error) {
	if strings.TrimSpace(documentID) == "" {
		return "", errors.NewInvalidRequestError("document_id is required")
	}
	resolved := s.documents.ResolveExistingID(documentID)
	if resolved == "" {
		return "", errors.NewNotFoundError("document %q not found", documentID)
	}
	return resolved, nil
}

// firstReplacement extracts the first entry of a JSON-encoded replacement
// list. Malformed upstream metadata is ignored: the replacement is simply
// omitted.
func firstReplacement(amendedBy string) string {
	if amendedBy == "" {
		return ""
	}
	var replacements []string
	if err := json.Unmarshal([]byte(amendedBy), &replacements); err != nil {
		return ""
	}
	if len(replacements) == 0 {
		return ""
	}
	return replacements[0]
}
