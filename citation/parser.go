package citation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	articleNumber = `(\d+(?:\s*[a-z]+)?(?:er)?)`
	statuteID     = `((?:loi|wet)-\d{4}-\d{2}-\d{2}-\d{10}-(?:fr|nl))`
)

var (
	idFirstPattern           = regexp.MustCompile(`(?i)^` + statuteID + `\s*,?\s*(?:art\.?|article)\s*` + articleNumber + `$`)
	articleFirstIDPattern    = regexp.MustCompile(`(?i)^(?:art\.?|article)\s*` + articleNumber + `\s*,?\s*` + statuteID + `$`)
	titleFirstPattern        = regexp.MustCompile(`(?i)^(.+?)\s*,\s*(?:art\.?|article)\s*` + articleNumber + `$`)
	articleFirstTitlePattern = regexp.MustCompile(`(?i)^(?:art\.?|article)\s*` + articleNumber + `\s*,\s*(.+?)$`)

	yearPattern       = regexp.MustCompile(`(19|20)\d{2}`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	ordinalPattern    = regexp.MustCompile(`^(\d+)er$`)
)

// matchers are tried strictly in priority order; the first that recognizes
// the input wins and the rest are never consulted. Keeping each form as an
// independent function keeps its capture semantics independently testable.
var matchers = []func(string) *ParsedCitation{
	matchIDFirst,
	matchArticleFirstID,
	matchTitleFirst,
	matchArticleFirstTitle,
}

// Parse converts a free-text Belgian citation into its structured form.
// Unparseable input is a valid outcome, not an error: the result carries
// Valid=false and an explanatory Error string.
func Parse(citation string) ParsedCitation {
	trimmed := strings.TrimSpace(citation)
	if trimmed == "" {
		return ParsedCitation{
			Valid: false,
			Type:  TypeUnknown,
			Error: "Empty citation",
		}
	}

	for _, match := range matchers {
		if parsed := match(trimmed); parsed != nil {
			return *parsed
		}
	}

	return ParsedCitation{
		Valid: false,
		Type:  TypeUnknown,
		Error: fmt.Sprintf("Could not parse Belgian citation: %q", trimmed),
	}
}

// matchIDFirst recognizes "<statute-id>, art. <number>".
func matchIDFirst(citation string) *ParsedCitation {
	match := idFirstPattern.FindStringSubmatch(citation)
	if match == nil {
		return nil
	}
	documentID := match[1]
	return &ParsedCitation{
		Valid:   true,
		Type:    TypeStatute,
		Title:   documentID,
		Year:    extractYear(documentID),
		Section: normalizeArticleNumber(match[2]),
	}
}

// matchArticleFirstID recognizes "art. <number>, <statute-id>".
func matchArticleFirstID(citation string) *ParsedCitation {
	match := articleFirstIDPattern.FindStringSubmatch(citation)
	if match == nil {
		return nil
	}
	documentID := match[2]
	return &ParsedCitation{
		Valid:   true,
		Type:    TypeStatute,
		Title:   documentID,
		Year:    extractYear(documentID),
		Section: normalizeArticleNumber(match[1]),
	}
}

// matchTitleFirst recognizes "<title>, art. <number>". The title is any
// non-greedy text before the final comma and article marker.
func matchTitleFirst(citation string) *ParsedCitation {
	match := titleFirstPattern.FindStringSubmatch(citation)
	if match == nil {
		return nil
	}
	title := strings.TrimSpace(match[1])
	return &ParsedCitation{
		Valid:   true,
		Type:    TypeStatute,
		Title:   title,
		Year:    extractYear(title),
		Section: normalizeArticleNumber(match[2]),
	}
}

// matchArticleFirstTitle recognizes "art. <number>, <title>".
func matchArticleFirstTitle(citation string) *ParsedCitation {
	match := articleFirstTitlePattern.FindStringSubmatch(citation)
	if match == nil {
		return nil
	}
	title := strings.TrimSpace(match[2])
	return &ParsedCitation{
		Valid:   true,
		Type:    TypeStatute,
		Title:   title,
		Year:    extractYear(title),
		Section: normalizeArticleNumber(match[1]),
	}
}

// extractYear returns the first 4-digit year in [1900,2099] found in the
// id or title capture, or 0 when absent.
func extractYear(value string) int {
	match := yearPattern.FindString(value)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// normalizeArticleNumber strips internal whitespace, lowercases, and
// collapses the French ordinal form: "1er" becomes "1".
func normalizeArticleNumber(value string) string {
	compact := strings.ToLower(whitespacePattern.ReplaceAllString(value, ""))
	return ordinalPattern.ReplaceAllString(compact, "$1")
}
