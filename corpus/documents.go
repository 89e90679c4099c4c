package corpus

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ansvar-systems/belgian-law-mcp/errors"
)

var (
	canonicalIDPattern = regexp.MustCompile(`(?i)^(?:loi|wet)-\d{4}-\d{2}-\d{2}-\d{10}-(?:fr|nl)$`)
	isoDatePattern     = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	textualDatePattern = regexp.MustCompile(`(?i)(\d{1,2})\s+([\p{L}.-]+)\s+(\d{4})`)
)

const documentColumns = `id, type, title, status,
	COALESCE(issued_date, ''), COALESCE(in_force_date, ''),
	COALESCE(url, ''), COALESCE(language, ''), COALESCE(numac, '')`

// DocumentStore resolves loose references to canonical statute documents.
type DocumentStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewDocumentStore creates a document store over the corpus snapshot.
// Logger may be nil for silent operation.
func NewDocumentStore(db *sql.DB, logger *zap.SugaredLogger) *DocumentStore {
	return &DocumentStore{db: db, logger: logger}
}

// Resolve maps a free-form reference (canonical id, partial title, or date
// expression, possibly led by a language marker word) to a document.
//
// Precedence, first success wins:
//  1. exact canonical-id lookup
//  2. date-based lookup (ISO or textual FR/NL date), preferring the
//     language prefix matching a leading "loi"/"wet" marker
//  3. fuzzy title containment, exact title equality first, then shortest
//     containing title
//
// Returns errors.ErrNotFound (wrapped) when nothing matches.
func (s *DocumentStore) Resolve(reference string) (*LegalDocument, error) {
	trimmed := strings.TrimSpace(reference)
	if trimmed == "" {
		return nil, errors.NewInvalidRequestError("document reference is required")
	}

	if canonicalIDPattern.MatchString(trimmed) {
		doc, err := s.queryOne(`SELECT `+documentColumns+` FROM legal_documents WHERE id = ? LIMIT 1`, trimmed)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return doc, nil
		}
		return nil, errors.NewNotFoundError("document %q not found", trimmed)
	}

	if date := extractBelgianDate(trimmed); date != "" {
		if doc, err := s.resolveByDate(trimmed, date); err != nil {
			return nil, err
		} else if doc != nil {
			return doc, nil
		}
	}

	doc, err := s.resolveByTitle(trimmed)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("document %q not found", trimmed)
	}
	return doc, nil
}

// ResolveExistingID maps a document identifier that may be a canonical id
// or a title fragment to the canonical id of an existing document. Returns
// the empty string when nothing matches; callers typically fall back to the
// raw input so downstream lookups miss cleanly.
func (s *DocumentStore) ResolveExistingID(reference string) string {
	trimmed := strings.TrimSpace(reference)
	if trimmed == "" {
		return ""
	}

	var id string
	err := s.db.QueryRow(
		`SELECT id FROM legal_documents WHERE id = ? OR title LIKE ? ORDER BY CASE WHEN id = ? THEN 0 ELSE 1 END LIMIT 1`,
		trimmed, "%"+trimmed+"%", trimmed,
	).Scan(&id)
	if err != nil {
		return ""
	}
	return id
}

// CheckCurrency reports whether a statute is current, optionally evaluated
// at an as-of date and optionally checking a provision's existence under
// that date. Historical repeal dates are not tracked in the dataset, so the
// as-of status reuses the current repeal flag with an explanatory warning.
func (s *DocumentStore) CheckCurrency(provisions *ProvisionStore, documentID, provisionRef, asOfDate string) (*CurrencyReport, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, errors.NewInvalidRequestError("document_id is required")
	}

	asOf, err := NormalizeAsOfDate(asOfDate)
	if err != nil {
		return nil, err
	}

	doc, err := s.queryOne(
		`SELECT `+documentColumns+` FROM legal_documents WHERE id = ? OR title LIKE ? LIMIT 1`,
		documentID, "%"+documentID+"%",
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("document %q not found", documentID)
	}

	report := &CurrencyReport{
		DocumentID:  doc.ID,
		Title:       doc.Title,
		Status:      doc.Status,
		Type:        doc.Type,
		IssuedDate:  doc.IssuedDate,
		InForceDate: doc.InForceDate,
		IsCurrent:   doc.Status == StatusInForce,
		AsOfDate:    asOf,
		Warnings:    []string{},
	}

	if doc.Status == StatusRepealed {
		report.Warnings = append(report.Warnings, "This statute has been repealed")
	}

	if asOf != "" {
		started := doc.InForceDate == "" || doc.InForceDate <= asOf
		switch {
		case !started:
			report.StatusAsOf = StatusNotYetInForce
		case doc.Status == StatusRepealed:
			report.StatusAsOf = StatusRepealed
		default:
			report.StatusAsOf = StatusInForce
		}
		inForce := report.StatusAsOf == StatusInForce
		report.IsInForceAsOf = &inForce

		if doc.Status == StatusRepealed {
			report.Warnings = append(report.Warnings,
				"Historical repeal date is not tracked in this dataset; status_as_of uses current repeal status.")
		}
	}

	if provisionRef != "" {
		exists, err := provisions.ExistsAsOf(doc.ID, provisionRef, asOf)
		if err != nil {
			return nil, err
		}
		report.ProvisionExists = &exists
		if !exists {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Provision %q not found in this document", provisionRef))
		}
	}

	return report, nil
}

// resolveByDate tries canonical ids carrying the extracted date. A leading
// language marker ("loi"/"wet", diacritic- and case-normalized) narrows the
// first attempt to that language's prefix; both prefixes are tried on a
// miss, lexicographically first id winning.
func (s *DocumentStore) resolveByDate(reference, date string) (*LegalDocument, error) {
	if prefix := detectLanguagePrefix(reference); prefix != "" {
		doc, err := s.queryOne(
			`SELECT `+documentColumns+` FROM legal_documents WHERE id LIKE ? ORDER BY id LIMIT 1`,
			prefix+"-"+date+"-%",
		)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return doc, nil
		}
	}

	return s.queryOne(
		`SELECT `+documentColumns+` FROM legal_documents WHERE id LIKE ? OR id LIKE ? ORDER BY id LIMIT 1`,
		"loi-"+date+"-%", "wet-"+date+"-%",
	)
}

// resolveByTitle ranks containment matches: exact title equality first,
// then ascending title length. The shortest-containing-title tie-break has
// no semantic guarantee and can pick an overly generic document when titles
// share a substring; it is preserved as-is because callers depend on the
// current behavior.
func (s *DocumentStore) resolveByTitle(reference string) (*LegalDocument, error) {
	return s.queryOne(
		`SELECT `+documentColumns+` FROM legal_documents
		 WHERE title LIKE ?
		 ORDER BY CASE WHEN title = ? THEN 0 ELSE 1 END, LENGTH(title)
		 LIMIT 1`,
		"%"+reference+"%", reference,
	)
}

// queryOne runs a single-document query, mapping sql.ErrNoRows to nil.
func (s *DocumentStore) queryOne(query string, args ...interface{}) (*LegalDocument, error) {
	var doc LegalDocument
	err := s.db.QueryRow(query, args...).Scan(
		&doc.ID, &doc.Type, &doc.Title, &doc.Status,
		&doc.IssuedDate, &doc.InForceDate,
		&doc.URL, &doc.Language, &doc.NUMAC,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "query document")
	}
	return &doc, nil
}

// detectLanguagePrefix returns "loi" or "wet" when the reference starts
// with that marker word, or "" otherwise.
func detectLanguagePrefix(reference string) string {
	normalized := normalizeWord(reference)
	if strings.HasPrefix(normalized, "LOI") {
		return "loi"
	}
	if strings.HasPrefix(normalized, "WET") {
		return "wet"
	}
	return ""
}

// extractBelgianDate pulls an ISO YYYY-MM-DD substring or a textual
// "D MONTH YYYY" expression (FR or NL month names) out of a reference.
// Returns "" when no date expression is present.
func extractBelgianDate(reference string) string {
	if match := isoDatePattern.FindStringSubmatch(reference); match != nil {
		return match[1] + "-" + match[2] + "-" + match[3]
	}

	match := textualDatePattern.FindStringSubmatch(reference)
	if match == nil {
		return ""
	}

	day, err := strconv.Atoi(match[1])
	if err != nil {
		return ""
	}
	month, ok := months[normalizeWord(match[2])]
	if !ok {
		return ""
	}

	return fmt.Sprintf("%s-%s-%02d", match[3], month, day)
}
