package citation

import "strings"

// Format renders a parsed citation back to canonical prose in the given
// style. Unrecognized styles behave as StyleFull. An invalid parse result,
// or one without a section, renders as the empty string; that is a defined
// outcome, not an error.
func Format(parsed ParsedCitation, style Style) string {
	if !parsed.Valid || parsed.Section == "" {
		return ""
	}

	pinpoint := buildPinpoint(parsed)
	title := strings.TrimSpace(parsed.Title)

	switch style {
	case StylePinpoint:
		return "art. " + pinpoint

	case StyleShort:
		if title != "" {
			return "art. " + pinpoint + " " + title
		}
		return "art. " + pinpoint

	default: // StyleFull and anything unrecognized
		if title != "" {
			return title + ", art. " + pinpoint
		}
		return "art. " + pinpoint
	}
}

// buildPinpoint assembles "<section>(<subsection>)(<paragraph>)", omitting
// absent components. The order is fixed: subsection before paragraph.
func buildPinpoint(parsed ParsedCitation) string {
	ref := parsed.Section
	if parsed.Subsection != "" {
		ref += "(" + parsed.Subsection + ")"
	}
	if parsed.Paragraph != "" {
		ref += "(" + parsed.Paragraph + ")"
	}
	return ref
}
