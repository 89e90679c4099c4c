package corpus

import (
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"github.com/ansvar-systems/belgian-law-mcp/errors"
)

// Query constants. Provision identity is dual-keyed throughout: a reference
// matches a row when it equals either provision_ref or section, because
// source data may populate only one of them consistently.
const (
	provisionCurrentQuery = `
		SELECT
			lp.document_id,
			ld.title,
			ld.status,
			lp.provision_ref,
			COALESCE(lp.chapter, ''),
			lp.section,
			COALESCE(lp.title, ''),
			lp.content,
			NULL,
			NULL
		FROM legal_provisions lp
		JOIN legal_documents ld ON ld.id = lp.document_id
		WHERE lp.document_id = ? AND (lp.provision_ref = ? OR lp.section = ?)
		LIMIT 1`

	// Half-open interval [valid_from, valid_to): the valid_to date itself
	// belongs to the successor version. Versions are ranked newest-first by
	// valid_from (absent = earliest possible), then by row id to break ties
	// from data anomalies.
	provisionVersionQuery = `
		SELECT
			lpv.document_id,
			ld.title,
			ld.status,
			lpv.provision_ref,
			COALESCE(lpv.chapter, ''),
			lpv.section,
			COALESCE(lpv.title, ''),
			lpv.content,
			lpv.valid_from,
			lpv.valid_to
		FROM legal_provision_versions lpv
		JOIN legal_documents ld ON ld.id = lpv.document_id
		WHERE lpv.document_id = ?
		  AND (lpv.provision_ref = ? OR lpv.section = ?)
		  AND (lpv.valid_from IS NULL OR lpv.valid_from <= ?)
		  AND (lpv.valid_to IS NULL OR lpv.valid_to > ?)
		ORDER BY COALESCE(lpv.valid_from, '0000-01-01') DESC, lpv.id DESC
		LIMIT 1`

	allCurrentProvisionsQuery = `
		SELECT
			lp.document_id,
			ld.title,
			ld.status,
			lp.provision_ref,
			COALESCE(lp.chapter, ''),
			lp.section,
			COALESCE(lp.title, ''),
			lp.content,
			NULL,
			NULL
		FROM legal_provisions lp
		JOIN legal_documents ld ON ld.id = lp.document_id
		WHERE lp.document_id = ?
		ORDER BY lp.id`

	allVersionedProvisionsQuery = `
		WITH ranked_versions AS (
			SELECT
				lpv.document_id,
				ld.title AS document_title,
				ld.status AS document_status,
				lpv.provision_ref,
				COALESCE(lpv.chapter, '') AS chapter,
				lpv.section,
				COALESCE(lpv.title, '') AS title,
				lpv.content,
				lpv.valid_from,
				lpv.valid_to,
				row_number() OVER (
					PARTITION BY lpv.document_id, lpv.provision_ref
					ORDER BY COALESCE(lpv.valid_from, '0000-01-01') DESC, lpv.id DESC
				) AS version_rank
			FROM legal_provision_versions lpv
			JOIN legal_documents ld ON ld.id = lpv.document_id
			WHERE lpv.document_id = ?
			  AND (lpv.valid_from IS NULL OR lpv.valid_from <= ?)
			  AND (lpv.valid_to IS NULL OR lpv.valid_to > ?)
		)
		SELECT
			document_id,
			document_title,
			document_status,
			provision_ref,
			chapter,
			section,
			title,
			content,
			valid_from,
			valid_to
		FROM ranked_versions
		WHERE version_rank = 1
		ORDER BY provision_ref`
)

// ProvisionStore resolves provision references to text, including the text
// version legally in force at an arbitrary as-of date.
type ProvisionStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewProvisionStore creates a provision store over the corpus snapshot.
// Logger may be nil for silent operation.
func NewProvisionStore(db *sql.DB, logger *zap.SugaredLogger) *ProvisionStore {
	return &ProvisionStore{db: db, logger: logger}
}

// Get returns the provision matching the dual-keyed reference. With an
// as-of date it selects the historical version whose half-open validity
// interval covers the date; when no version matches (the date precedes the
// earliest version, or no versions exist), it falls back to the current
// table as a best-effort answer. Callers relying on historically-dated
// queries should note that this fallback can return present-day text.
func (s *ProvisionStore) Get(documentID, reference, asOfDate string) (*Provision, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, errors.NewInvalidRequestError("document_id is required")
	}
	if strings.TrimSpace(reference) == "" {
		return nil, errors.NewInvalidRequestError("provision reference is required")
	}

	asOf, err := NormalizeAsOfDate(asOfDate)
	if err != nil {
		return nil, err
	}

	if asOf != "" {
		row, err := s.queryOne(provisionVersionQuery, documentID, reference, reference, asOf, asOf)
		if err != nil {
			return nil, err
		}
		if row != nil {
			return row, nil
		}
		if s.logger != nil {
			s.logger.Debugw("No provision version matches as-of date, falling back to current text",
				"document_id", documentID,
				"reference", reference,
				"as_of_date", asOf,
			)
		}
	}

	row, err := s.queryOne(provisionCurrentQuery, documentID, reference, reference)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errors.NewNotFoundError("provision %q not found in document %q", reference, documentID)
	}
	return row, nil
}

// GetAll returns every provision of a document. With an as-of date it
// selects, independently per provision_ref, the latest version valid at
// that date; when the filter yields nothing it falls back to the complete
// current provision set, unfiltered.
func (s *ProvisionStore) GetAll(documentID, asOfDate string) ([]Provision, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, errors.NewInvalidRequestError("document_id is required")
	}

	asOf, err := NormalizeAsOfDate(asOfDate)
	if err != nil {
		return nil, err
	}

	if asOf != "" {
		rows, err := s.queryMany(allVersionedProvisionsQuery, documentID, asOf, asOf)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}

	return s.queryMany(allCurrentProvisionsQuery, documentID)
}

// ExistsAny reports whether any of the candidate references matches a
// current provision of the document, on either key of the dual identity.
func (s *ProvisionStore) ExistsAny(documentID string, references ...string) (bool, error) {
	if strings.TrimSpace(documentID) == "" || len(references) == 0 {
		return false, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(references)), ",")
	query := `SELECT 1 FROM legal_provisions
		WHERE document_id = ?
		  AND (section IN (` + placeholders + `) OR provision_ref IN (` + placeholders + `))
		LIMIT 1`

	args := make([]interface{}, 0, 1+2*len(references))
	args = append(args, documentID)
	for _, ref := range references {
		args = append(args, ref)
	}
	for _, ref := range references {
		args = append(args, ref)
	}

	var one int
	err := s.db.QueryRow(query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "check provision existence")
	}
	return true, nil
}

// ExistsAsOf reports whether the reference resolves under the as-of
// interval filter, falling back to the current table (matching the Get
// fallback) so an early date never reads as a missing article. An empty
// as-of date checks the current table only.
func (s *ProvisionStore) ExistsAsOf(documentID, reference, asOfDate string) (bool, error) {
	asOf, err := NormalizeAsOfDate(asOfDate)
	if err != nil {
		return false, err
	}

	if asOf != "" {
		var one int
		err := s.db.QueryRow(`
			SELECT 1 FROM legal_provision_versions
			WHERE document_id = ?
			  AND (provision_ref = ? OR section = ?)
			  AND (valid_from IS NULL OR valid_from <= ?)
			  AND (valid_to IS NULL OR valid_to > ?)
			LIMIT 1`,
			documentID, reference, reference, asOf, asOf,
		).Scan(&one)
		if err == nil {
			return true, nil
		}
		if err != sql.ErrNoRows {
			return false, errors.Wrap(err, "check provision version existence")
		}
	}

	return s.ExistsAny(documentID, reference)
}

func (s *ProvisionStore) queryOne(query string, args ...interface{}) (*Provision, error) {
	row, err := scanProvision(s.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "query provision")
	}
	return row, nil
}

func (s *ProvisionStore) queryMany(query string, args ...interface{}) ([]Provision, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query provisions")
	}
	defer rows.Close()

	provisions := []Provision{}
	for rows.Next() {
		p, err := scanProvision(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan provision")
		}
		provisions = append(provisions, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate provisions")
	}
	return provisions, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProvision(scanner rowScanner) (*Provision, error) {
	var p Provision
	var validFrom, validTo sql.NullString
	err := scanner.Scan(
		&p.DocumentID,
		&p.DocumentTitle,
		&p.DocumentStatus,
		&p.ProvisionRef,
		&p.Chapter,
		&p.Section,
		&p.Title,
		&p.Content,
		&validFrom,
		&validTo,
	)
	if err != nil {
		return nil, err
	}
	if validFrom.Valid {
		p.ValidFrom = &validFrom.String
	}
	if validTo.Valid {
		p.ValidTo = &validTo.String
	}
	return &p, nil
}
