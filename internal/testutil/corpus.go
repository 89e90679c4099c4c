// Package testutil builds in-memory corpus databases for tests, seeded
// with a small set of real-shaped Belgian statutes.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE legal_documents (
	id TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	status TEXT NOT NULL,
	issued_date TEXT,
	in_force_date TEXT,
	url TEXT,
	description TEXT,
	language TEXT,
	numac TEXT,
	last_updated TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE legal_provisions (
	id INTEGER PRIMARY KEY,
	document_id TEXT NOT NULL REFERENCES legal_documents(id),
	provision_ref TEXT NOT NULL,
	chapter TEXT,
	section TEXT NOT NULL,
	title TEXT,
	content TEXT NOT NULL,
	language TEXT,
	metadata TEXT,
	UNIQUE(document_id, provision_ref)
);

CREATE INDEX idx_provisions_doc ON legal_provisions(document_id);

CREATE VIRTUAL TABLE provisions_fts USING fts5(
	content, title,
	content='legal_provisions',
	content_rowid='id',
	tokenize='unicode61'
);

CREATE TRIGGER provisions_ai AFTER INSERT ON legal_provisions BEGIN
	INSERT INTO provisions_fts(rowid, content, title)
	VALUES (new.id, new.content, new.title);
END;

CREATE TABLE legal_provision_versions (
	id INTEGER PRIMARY KEY,
	document_id TEXT NOT NULL REFERENCES legal_documents(id),
	provision_ref TEXT NOT NULL,
	chapter TEXT,
	section TEXT NOT NULL,
	title TEXT,
	content TEXT NOT NULL,
	language TEXT,
	metadata TEXT,
	valid_from TEXT,
	valid_to TEXT
);

CREATE INDEX idx_provision_versions_doc_ref
	ON legal_provision_versions(document_id, provision_ref);

CREATE VIRTUAL TABLE provision_versions_fts USING fts5(
	content, title,
	content='legal_provision_versions',
	content_rowid='id',
	tokenize='unicode61'
);

CREATE TRIGGER provision_versions_ai AFTER INSERT ON legal_provision_versions BEGIN
	INSERT INTO provision_versions_fts(rowid, content, title)
	VALUES (new.id, new.content, new.title);
END;

CREATE TABLE case_law (
	id INTEGER PRIMARY KEY,
	document_id TEXT NOT NULL,
	court TEXT,
	case_number TEXT,
	decision_date TEXT,
	summary TEXT,
	keywords TEXT
);

CREATE TABLE eu_documents (
	id TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	year INTEGER NOT NULL,
	number INTEGER NOT NULL,
	community TEXT,
	celex_number TEXT,
	title TEXT,
	short_name TEXT,
	url_eur_lex TEXT,
	in_force BOOLEAN DEFAULT 1,
	amended_by TEXT,
	repeals TEXT
);

CREATE TABLE eu_references (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_type TEXT NOT NULL,
	source_id TEXT NOT NULL,
	document_id TEXT NOT NULL REFERENCES legal_documents(id),
	provision_id INTEGER REFERENCES legal_provisions(id),
	eu_document_id TEXT NOT NULL REFERENCES eu_documents(id),
	eu_article TEXT,
	reference_type TEXT NOT NULL,
	reference_context TEXT,
	full_citation TEXT,
	is_primary_implementation BOOLEAN DEFAULT 0,
	implementation_status TEXT
);

CREATE TABLE db_metadata (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type document struct {
	id, docType, title, status                   string
	issuedDate, inForceDate, url, language, numac string
}

type provision struct {
	documentID, provisionRef, section, title, content, language string
}

type version struct {
	documentID, provisionRef, section, title, content string
	validFrom, validTo                                *string
}

var documents = []document{
	{
		id:          "loi-1994-02-02-1994009284-fr",
		docType:     "statute",
		title:       "Loi du 2 fevrier 1994 relative a la protection de la jeunesse",
		status:      "in_force",
		issuedDate:  "1994-02-02",
		inForceDate: "1994-03-01",
		url:         "http://www.ejustice.just.fgov.be/eli/loi/1994/02/02/1994009284/justel",
		language:    "fr",
		numac:       "1994009284",
	},
	{
		id:          "wet-1994-02-02-1994009284-nl",
		docType:     "statute",
		title:       "Wet van 2 februari 1994 betreffende de jeugdbescherming",
		status:      "in_force",
		issuedDate:  "1994-02-02",
		inForceDate: "1994-03-01",
		url:         "http://www.ejustice.just.fgov.be/eli/wet/1994/02/02/1994009284/justel",
		language:    "nl",
		numac:       "1994009284",
	},
	{
		id:          "loi-1994-02-10-1994009323-fr",
		docType:     "statute",
		title:       "Loi du 10 fevrier 1994 sur la mediation penale",
		status:      "repealed",
		issuedDate:  "1994-02-10",
		inForceDate: "1994-04-01",
		url:         "http://www.ejustice.just.fgov.be/eli/loi/1994/02/10/1994009323/justel",
		language:    "fr",
		numac:       "1994009323",
	},
	{
		id:          "loi-1992-12-08-1992009783-fr",
		docType:     "statute",
		title:       "Loi du 8 decembre 1992 relative a la vie privee",
		status:      "amended",
		issuedDate:  "1992-12-08",
		inForceDate: "1993-01-01",
		url:         "http://www.ejustice.just.fgov.be/eli/loi/1992/12/08/1992009783/justel",
		language:    "fr",
		numac:       "1992009783",
	},
}

var provisions = []provision{
	{
		documentID:   "loi-1994-02-02-1994009284-fr",
		provisionRef: "art1",
		section:      "1",
		title:        "Article 1",
		content:      "La presente loi protege la jeunesse et organise les mesures de protection.",
		language:     "fr",
	},
	{
		documentID:   "loi-1994-02-02-1994009284-fr",
		provisionRef: "art10",
		section:      "10",
		title:        "Article 10",
		content:      "Le tribunal de la jeunesse peut prendre des mesures de protection adaptees.",
		language:     "fr",
	},
	{
		documentID:   "wet-1994-02-02-1994009284-nl",
		provisionRef: "art1",
		section:      "1",
		title:        "Artikel 1",
		content:      "Deze wet beschermt de jeugd en stelt beschermingsmaatregelen vast.",
		language:     "nl",
	},
	{
		documentID:   "loi-1994-02-10-1994009323-fr",
		provisionRef: "art1",
		section:      "1",
		title:        "Article 1",
		content:      "La mediation penale est organisee devant le tribunal competent.",
		language:     "fr",
	},
	{
		documentID:   "loi-1992-12-08-1992009783-fr",
		provisionRef: "art1",
		section:      "1",
		title:        "Article 1",
		content:      "La presente loi encadre le traitement des donnees personnelles et de la vie privee.",
		language:     "fr",
	},
}

func strPtr(s string) *string { return &s }

var versions = []version{
	{
		documentID:   "loi-1994-02-02-1994009284-fr",
		provisionRef: "art1",
		section:      "1",
		title:        "Article 1",
		content:      "Ancien texte: la loi protege la jeunesse selon la version initiale.",
		validFrom:    strPtr("1994-03-01"),
		validTo:      strPtr("2010-01-01"),
	},
	{
		documentID:   "loi-1994-02-02-1994009284-fr",
		provisionRef: "art1",
		section:      "1",
		title:        "Article 1",
		content:      "Texte modernise: la loi protege la jeunesse et renforce la protection des mineurs.",
		validFrom:    strPtr("2010-01-01"),
	},
	{
		documentID:   "loi-1994-02-02-1994009284-fr",
		provisionRef: "art10",
		section:      "10",
		title:        "Article 10",
		content:      "Historique: le tribunal de la jeunesse peut statuer sur les mesures.",
		validFrom:    strPtr("1994-03-01"),
	},
}

// OpenCorpus creates an in-memory corpus database seeded with the standard
// test statutes. The database is closed automatically when the test ends.
func OpenCorpus(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory corpus: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create corpus schema: %v", err)
	}

	for _, d := range documents {
		_, err := db.Exec(`
			INSERT INTO legal_documents (id, type, title, status, issued_date, in_force_date, url, language, numac)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.id, d.docType, d.title, d.status, d.issuedDate, d.inForceDate, d.url, d.language, d.numac)
		if err != nil {
			t.Fatalf("insert document %s: %v", d.id, err)
		}
	}

	provisionIDs := make(map[string]int64)
	for _, p := range provisions {
		res, err := db.Exec(`
			INSERT INTO legal_provisions (document_id, provision_ref, section, title, content, language)
			VALUES (?, ?, ?, ?, ?, ?)`,
			p.documentID, p.provisionRef, p.section, p.title, p.content, p.language)
		if err != nil {
			t.Fatalf("insert provision %s/%s: %v", p.documentID, p.provisionRef, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			t.Fatalf("provision rowid: %v", err)
		}
		provisionIDs[p.documentID+":"+p.provisionRef] = id
	}

	for _, v := range versions {
		_, err := db.Exec(`
			INSERT INTO legal_provision_versions (document_id, provision_ref, section, title, content, language, valid_from, valid_to)
			VALUES (?, ?, ?, ?, ?, 'fr', ?, ?)`,
			v.documentID, v.provisionRef, v.section, v.title, v.content, v.validFrom, v.validTo)
		if err != nil {
			t.Fatalf("insert provision version %s/%s: %v", v.documentID, v.provisionRef, err)
		}
	}

	seedEUReferences(t, db, provisionIDs)

	metadata := map[string]string{
		"tier":           "free",
		"schema_version": "1.0",
		"built_at":       "2026-02-16T00:00:00.000Z",
		"fingerprint":    "test-fingerprint",
		"builder":        "testutil",
	}
	for key, value := range metadata {
		if _, err := db.Exec("INSERT INTO db_metadata (key, value) VALUES (?, ?)", key, value); err != nil {
			t.Fatalf("insert metadata %s: %v", key, err)
		}
	}

	return db
}

func seedEUReferences(t *testing.T, db *sql.DB, provisionIDs map[string]int64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO eu_documents (id, type, year, number, community, celex_number, title, short_name, url_eur_lex, in_force, amended_by)
		VALUES
			('regulation:2016/679', 'regulation', 2016, 679, 'EU', '32016R0679',
			 'General Data Protection Regulation', 'GDPR',
			 'https://eur-lex.europa.eu/eli/reg/2016/679/oj', 1, NULL),
			('directive:95/46', 'directive', 1995, 46, 'EU', '31995L0046',
			 'Data Protection Directive', 'DPD',
			 'https://eur-lex.europa.eu/eli/dir/1995/46/oj', 0, '["regulation:2016/679"]')`)
	if err != nil {
		t.Fatalf("insert EU documents: %v", err)
	}

	art1 := provisionIDs["loi-1994-02-02-1994009284-fr:art1"]
	_, err = db.Exec(`
		INSERT INTO eu_references (source_type, source_id, document_id, provision_id, eu_document_id, eu_article, reference_type, reference_context, full_citation, is_primary_implementation, implementation_status)
		VALUES
			('document', 'loi-1994-02-02-1994009284-fr', 'loi-1994-02-02-1994009284-fr', NULL,
			 'regulation:2016/679', NULL, 'supplements', 'Mise en oeuvre nationale du RGPD',
			 'Regulation (EU) 2016/679', 1, 'complete'),
			('provision', 'loi-1994-02-02-1994009284-fr:art1', 'loi-1994-02-02-1994009284-fr', ?,
			 'regulation:2016/679', '6.1.e', 'cites_article', 'Article 1 cite l''article 6.1.e du RGPD',
			 'RGPD article 6.1.e', 0, 'complete'),
			('document', 'loi-1994-02-10-1994009323-fr', 'loi-1994-02-10-1994009323-fr', NULL,
			 'directive:95/46', NULL, 'implements', 'Reference historique',
			 'Directive 95/46', 1, 'unknown')`, art1)
	if err != nil {
		t.Fatalf("insert EU references: %v", err)
	}
}
