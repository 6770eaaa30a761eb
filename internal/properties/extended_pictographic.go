package properties

import "unicode"

// IsExtendedPictographic reports whether r is a member of the
// Extended_Pictographic property: the emoji base characters that combine
// with ZWJ to form sequences (spec.md §4.1, WB3c).
func IsExtendedPictographic(r rune) bool {
	return unicode.Is(extendedPictographicRanges, r)
}
