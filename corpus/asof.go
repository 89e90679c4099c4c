package corpus

import (
	"regexp"
	"time"

	"github.com/ansvar-systems/belgian-law-mcp/errors"
)

var isoDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeAsOfDate validates an optional as-of date. The empty string is
// passed through (meaning "current text"); anything else must be a real
// ISO calendar date. A malformed date is a hard failure, never silently
// defaulted.
func NormalizeAsOfDate(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if !isoDateShape.MatchString(value) {
		return "", errors.NewInvalidRequestError("as_of_date must be an ISO date (YYYY-MM-DD), got %q", value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return "", errors.NewInvalidRequestError("as_of_date must be an ISO date (YYYY-MM-DD), got %q", value)
	}
	return value, nil
}
