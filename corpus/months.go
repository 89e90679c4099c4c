package corpus

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Month-name tables for textual date expressions ("2 fevrier 1994",
// "2 februari 1994"). Keys are accent-stripped uppercase month names;
// values are two-digit month numbers. Built once at process start and
// never mutated.
var frenchMonths = map[string]string{
	"JANVIER":   "01",
	"FEVRIER":   "02",
	"MARS":      "03",
	"AVRIL":     "04",
	"MAI":       "05",
	"JUIN":      "06",
	"JUILLET":   "07",
	"AOUT":      "08",
	"SEPTEMBRE": "09",
	"OCTOBRE":   "10",
	"NOVEMBRE":  "11",
	"DECEMBRE":  "12",
}

var dutchMonths = map[string]string{
	"JANUARI":   "01",
	"FEBRUARI":  "02",
	"MAART":     "03",
	"APRIL":     "04",
	"MEI":       "05",
	"JUNI":      "06",
	"JULI":      "07",
	"AUGUSTUS":  "08",
	"SEPTEMBER": "09",
	"OKTOBER":   "10",
	"NOVEMBER":  "11",
	"DECEMBER":  "12",
}

// months merges both languages; after accent stripping no month name
// collides between French and Dutch, so lookup needs no language hint.
var months = mergeMonths(frenchMonths, dutchMonths)

func mergeMonths(tables ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, table := range tables {
		for name, number := range table {
			merged[name] = number
		}
	}
	return merged
}

// normalizeWord strips diacritics and non-letters from a token and
// uppercases it, so "février", "Fevrier." and "FEVRIER" all key the same
// month table entry.
func normalizeWord(value string) string {
	decomposed := norm.NFD.String(value)
	var b strings.Builder
	for _, r := range decomposed {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		}
	}
	return b.String()
}
