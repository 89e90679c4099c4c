package citation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ansvar-systems/belgian-law-mcp/corpus"
	"github.com/ansvar-systems/belgian-law-mcp/errors"
)

// DocumentResolver resolves a loose document reference (canonical id, title
// fragment, or date expression) to a canonical document.
type DocumentResolver interface {
	Resolve(reference string) (*corpus.LegalDocument, error)
}

// ProvisionChecker tests provision existence against the current
// (non-temporal) provision table over the dual-keyed identity.
type ProvisionChecker interface {
	ExistsAny(documentID string, references ...string) (bool, error)
}

// Validator produces an end-to-end validity report for a citation string.
// Every domain miss (unknown document, missing article, repealed statute)
// is reported as data plus warnings; only infrastructure failures return
// an error.
type Validator struct {
	documents  DocumentResolver
	provisions ProvisionChecker
	logger     *zap.SugaredLogger
}

// NewValidator creates a validator over the given stores. Logger may be
// nil for silent operation.
func NewValidator(documents DocumentResolver, provisions ProvisionChecker, logger *zap.SugaredLogger) *Validator {
	return &Validator{
		documents:  documents,
		provisions: provisions,
		logger:     logger,
	}
}

// Validate parses the citation, resolves its document, and checks that the
// cited article exists in the current provision table.
func (v *Validator) Validate(citation string) (ValidationResult, error) {
	parsed := Parse(citation)

	if !parsed.Valid {
		errText := parsed.Error
		if errText == "" {
			errText = "Invalid citation format"
		}
		return ValidationResult{
			Citation:        parsed,
			DocumentExists:  false,
			ProvisionExists: false,
			Warnings:        []string{errText},
		}, nil
	}

	doc, err := v.documents.Resolve(parsed.Title)
	if err != nil {
		if errors.IsNotFoundError(err) || errors.IsInvalidRequestError(err) {
			return ValidationResult{
				Citation:        parsed,
				DocumentExists:  false,
				ProvisionExists: false,
				Warnings:        []string{fmt.Sprintf("Document %q not found in database", parsed.Title)},
			}, nil
		}
		return ValidationResult{}, errors.Wrap(err, "resolve document")
	}

	warnings := []string{}
	if doc.Status == corpus.StatusRepealed {
		warnings = append(warnings, "This statute has been repealed")
	}

	// A citation without a section denotes the whole document, which
	// trivially exists once the document resolved.
	provisionExists := true
	if parsed.Section != "" {
		compact := whitespacePattern.ReplaceAllString(parsed.Section, "")
		exists, err := v.provisions.ExistsAny(doc.ID,
			parsed.Section,
			compact,
			"art"+parsed.Section,
			"art"+compact,
		)
		if err != nil {
			return ValidationResult{}, errors.Wrap(err, "check provision existence")
		}
		provisionExists = exists
		if !exists {
			warnings = append(warnings, fmt.Sprintf("Article %s not found in %s", parsed.Section, doc.Title))
		}
	}

	if v.logger != nil {
		v.logger.Debugw("Citation validated",
			"document_id", doc.ID,
			"section", parsed.Section,
			"provision_exists", provisionExists,
			"warnings", len(warnings),
		)
	}

	return ValidationResult{
		Citation:        parsed,
		DocumentExists:  true,
		ProvisionExists: provisionExists,
		DocumentTitle:   doc.Title,
		DocumentURL:     doc.URL,
		Status:          doc.Status,
		Warnings:        warnings,
	}, nil
}
