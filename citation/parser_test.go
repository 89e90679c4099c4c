package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrenchTitleCitation(t *testing.T) {
	parsed := Parse("Loi du 2 fevrier 1994, art. 1")

	assert.True(t, parsed.Valid)
	assert.Equal(t, TypeStatute, parsed.Type)
	assert.Equal(t, "Loi du 2 fevrier 1994", parsed.Title)
	assert.Equal(t, "1", parsed.Section)
	assert.Equal(t, 1994, parsed.Year)
}

func TestParseDutchTitleCitation(t *testing.T) {
	parsed := Parse("Wet van 2 februari 1994, art. 10")

	assert.True(t, parsed.Valid)
	assert.Equal(t, "10", parsed.Section)
	assert.Equal(t, 1994, parsed.Year)
}

func TestParseStatuteIDCitation(t *testing.T) {
	parsed := Parse("loi-1994-02-02-1994009284-fr, art. 1")

	assert.True(t, parsed.Valid)
	assert.Equal(t, TypeStatute, parsed.Type)
	assert.Equal(t, "loi-1994-02-02-1994009284-fr", parsed.Title)
	assert.Equal(t, "1", parsed.Section)
	assert.Equal(t, 1994, parsed.Year)
}

func TestParseArticleFirstID(t *testing.T) {
	parsed := Parse("art. 1, loi-1994-02-02-1994009284-fr")

	assert.True(t, parsed.Valid)
	assert.Equal(t, "loi-1994-02-02-1994009284-fr", parsed.Title)
	assert.Equal(t, "1", parsed.Section)
}

func TestParseArticleFirstTitle(t *testing.T) {
	parsed := Parse("article 10, Wet van 2 februari 1994")

	assert.True(t, parsed.Valid)
	assert.Equal(t, "Wet van 2 februari 1994", parsed.Title)
	assert.Equal(t, "10", parsed.Section)
}

func TestParseArticleNumberNormalization(t *testing.T) {
	tests := []struct {
		name     string
		citation string
		section  string
	}{
		{"ordinal collapses", "Loi du 2 fevrier 1994, art. 1er", "1"},
		{"plain digit", "Loi du 2 fevrier 1994, art. 1", "1"},
		{"letter suffix preserved", "Loi du 2 fevrier 1994, art. 15bis", "15bis"},
		{"internal whitespace stripped", "Loi du 2 fevrier 1994, art. 15 bis", "15bis"},
		{"uppercase article marker", "Loi du 2 fevrier 1994, ART. 7", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.citation)
			assert.True(t, parsed.Valid)
			assert.Equal(t, tt.section, parsed.Section)
		})
	}
}

func TestParseOrdinalAndPlainAreIdentical(t *testing.T) {
	withOrdinal := Parse("loi-1994-02-02-1994009284-fr, art. 1er")
	plain := Parse("loi-1994-02-02-1994009284-fr, art. 1")

	assert.Equal(t, plain.Section, withOrdinal.Section)
}

// The id-first form must win over the title-first form when both could
// match, so a canonical id is never degraded to a free-text title.
func TestParsePriorityOrder(t *testing.T) {
	parsed := Parse("loi-1994-02-02-1994009284-fr, art. 1")

	assert.Equal(t, "loi-1994-02-02-1994009284-fr", parsed.Title)
	assert.Equal(t, 1994, parsed.Year)
}

func TestParseDiacriticsPreserved(t *testing.T) {
	parsed := Parse("Loi du 2 février 1994, art. 1")

	assert.True(t, parsed.Valid)
	assert.Equal(t, "Loi du 2 février 1994", parsed.Title)
}

func TestParseYearExtraction(t *testing.T) {
	tests := []struct {
		name     string
		citation string
		year     int
	}{
		{"year in title", "Loi du 2 fevrier 1994, art. 1", 1994},
		{"year in id", "wet-2018-07-30-2018040581-nl, art. 5", 2018},
		{"no year", "Loi sur la vie privee, art. 1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.citation)
			assert.True(t, parsed.Valid)
			assert.Equal(t, tt.year, parsed.Year)
		})
	}
}

func TestParseEmptyCitation(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		parsed := Parse(input)
		assert.False(t, parsed.Valid)
		assert.Equal(t, TypeUnknown, parsed.Type)
		assert.Equal(t, "Empty citation", parsed.Error)
		assert.Empty(t, parsed.Section)
		assert.Empty(t, parsed.Title)
	}
}

func TestParseUnsupportedForm(t *testing.T) {
	parsed := Parse("Section 3, Data Protection Act 2018")

	assert.False(t, parsed.Valid)
	assert.Equal(t, TypeUnknown, parsed.Type)
	assert.Contains(t, parsed.Error, "Could not parse Belgian citation")
	assert.Contains(t, parsed.Error, "Section 3, Data Protection Act 2018")
	assert.Empty(t, parsed.Section)
	assert.Empty(t, parsed.Title)
}
