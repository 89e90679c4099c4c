package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStyles(t *testing.T) {
	parsed := ParsedCitation{
		Valid:   true,
		Type:    TypeStatute,
		Title:   "Loi du 2 fevrier 1994",
		Section: "1",
	}

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"full", StyleFull, "Loi du 2 fevrier 1994, art. 1"},
		{"short", StyleShort, "art. 1 Loi du 2 fevrier 1994"},
		{"pinpoint", StylePinpoint, "art. 1"},
		{"unrecognized behaves as full", Style("fancy"), "Loi du 2 fevrier 1994, art. 1"},
		{"empty style behaves as full", Style(""), "Loi du 2 fevrier 1994, art. 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(parsed, tt.style))
		})
	}
}

func TestFormatWithoutTitle(t *testing.T) {
	parsed := ParsedCitation{Valid: true, Type: TypeStatute, Section: "7"}

	assert.Equal(t, "art. 7", Format(parsed, StyleFull))
	assert.Equal(t, "art. 7", Format(parsed, StyleShort))
	assert.Equal(t, "art. 7", Format(parsed, StylePinpoint))
}

func TestFormatPinpointComponents(t *testing.T) {
	tests := []struct {
		name   string
		parsed ParsedCitation
		want   string
	}{
		{
			"section only",
			ParsedCitation{Valid: true, Section: "5"},
			"art. 5",
		},
		{
			"section and subsection",
			ParsedCitation{Valid: true, Section: "5", Subsection: "2"},
			"art. 5(2)",
		},
		{
			"section, subsection, paragraph",
			ParsedCitation{Valid: true, Section: "5", Subsection: "2", Paragraph: "b"},
			"art. 5(2)(b)",
		},
		{
			"paragraph without subsection",
			ParsedCitation{Valid: true, Section: "5", Paragraph: "b"},
			"art. 5(b)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.parsed, StylePinpoint))
		})
	}
}

// An invalid parse result, or one without a section, always renders empty
// regardless of style.
func TestFormatInvalidReturnsEmpty(t *testing.T) {
	invalid := Parse("not a citation at all")
	for _, style := range []Style{StyleFull, StyleShort, StylePinpoint} {
		assert.Equal(t, "", Format(invalid, style))
	}

	noSection := ParsedCitation{Valid: true, Title: "Loi du 2 fevrier 1994"}
	assert.Equal(t, "", Format(noSection, StyleFull))
}

func TestParseThenFormatRoundTrip(t *testing.T) {
	parsed := Parse("loi-1994-02-02-1994009284-fr, art. 1er")

	assert.True(t, parsed.Valid)
	assert.Equal(t, "art. 1", Format(parsed, StylePinpoint))
	assert.Equal(t, "loi-1994-02-02-1994009284-fr, art. 1", Format(parsed, StyleFull))
}
