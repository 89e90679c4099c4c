package corpus

import (
	"strings"
)

// SearchParams filters a full-text search over provision text.
type SearchParams struct {
	Query      string
	DocumentID string
	Status     string
	AsOfDate   string
	Limit      int
}

// DefaultSearchLimit caps result sets when the caller does not.
const DefaultSearchLimit = 20

// Search runs an FTS5 keyword search over provision content and titles.
// Without an as-of date it searches the current provision table; with one
// it searches historical versions, keeping only the latest version valid
// at that date per provision. An empty query returns an empty result set.
func (s *ProvisionStore) Search(params SearchParams) ([]Provision, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return []Provision{}, nil
	}

	asOf, err := NormalizeAsOfDate(params.AsOfDate)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	if asOf != "" {
		return s.searchVersions(query, params, asOf, limit)
	}
	return s.searchCurrent(query, params, limit)
}

func (s *ProvisionStore) searchCurrent(query string, params SearchParams, limit int) ([]Provision, error) {
	sql := `
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
		FROM provisions_fts f
		JOIN legal_provisions lp ON lp.id = f.rowid
		JOIN legal_documents ld ON ld.id = lp.document_id
		WHERE provisions_fts MATCH ?`
	args := []interface{}{ftsPhrase(query)}

	if params.DocumentID != "" {
		sql += ` AND lp.document_id = ?`
		args = append(args, params.DocumentID)
	}
	if params.Status != "" {
		sql += ` AND ld.status = ?`
		args = append(args, params.Status)
	}

	sql += ` ORDER BY rank LIMIT ?`
	args = append(args, limit)

	return s.queryMany(sql, args...)
}

func (s *ProvisionStore) searchVersions(query string, params SearchParams, asOf string, limit int) ([]Provision, error) {
	sql := `
		WITH matched_versions AS (
			SELECT
				lpv.id,
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
			FROM provision_versions_fts f
			JOIN legal_provision_versions lpv ON lpv.id = f.rowid
			JOIN legal_documents ld ON ld.id = lpv.document_id
			WHERE provision_versions_fts MATCH ?
			  AND (lpv.valid_from IS NULL OR lpv.valid_from <= ?)
			  AND (lpv.valid_to IS NULL OR lpv.valid_to > ?)`
	args := []interface{}{ftsPhrase(query), asOf, asOf}

	if params.DocumentID != "" {
		sql += ` AND lpv.document_id = ?`
		args = append(args, params.DocumentID)
	}
	if params.Status != "" {
		sql += ` AND ld.status = ?`
		args = append(args, params.Status)
	}

	sql += `
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
		FROM matched_versions
		WHERE version_rank = 1
		ORDER BY provision_ref
		LIMIT ?`
	args = append(args, limit)

	return s.queryMany(sql, args...)
}

// ftsPhrase quotes user input as an FTS5 phrase so reserved query syntax
// (AND, NEAR, *, ...) is matched literally instead of being interpreted.
func ftsPhrase(query string) string {
	return `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
}
