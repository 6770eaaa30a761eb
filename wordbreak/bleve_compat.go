package wordbreak

import (
	"unicode"

	"github.com/wordkit/uax29/internal/properties"
	"github.com/wordkit/uax29/internal/stringish/utf8"
)

// BleveNumeric reports whether token is numeric, by the definition used
// by the Bleve segmenter:
// https://github.com/blevesearch/segment/blob/master/segment_words.rl#L199-L207
// This API is experimental.
func BleveNumeric(token []byte) bool {
	var pos int
	var started bool
	var left, leftIgnoringExtend, leftBeforeThat scalar

	for pos < len(token) {
		right := decode(token[pos:])
		if right.width == 0 {
			return false
		}

		if started && !left.prop.Is(properties.Ignore) {
			leftBeforeThat = leftIgnoringExtend
			leftIgnoringExtend = left
		}

		if pos == 0 {
			if right.prop.Is(properties.Numeric | properties.ExtendNumLet) {
				left, started = right, true
				pos += right.width
				continue
			}
			return false
		}

		// WB8
		if leftIgnoringExtend.prop.Is(properties.Numeric) && right.prop.Is(properties.Numeric) {
			left = right
			pos += right.width
			continue
		}

		// WB11
		if right.prop.Is(properties.Numeric) &&
			leftIgnoringExtend.prop.Is(properties.MidNum|properties.MidNumLetQ) &&
			leftBeforeThat.prop.Is(properties.Numeric) {
			left = right
			pos += right.width
			continue
		}

		// WB12
		if right.prop.Is(properties.MidNum|properties.MidNumLetQ) && leftIgnoringExtend.prop.Is(properties.Numeric) {
			if forwardHasAny(properties.Numeric, token[pos+right.width:]) {
				left = right
				pos += right.width
				continue
			}
		}

		// WB13a
		if right.prop.Is(properties.ExtendNumLet) && leftIgnoringExtend.prop.Is(properties.Numeric|properties.ExtendNumLet) {
			left = right
			pos += right.width
			continue
		}

		// WB13b
		if right.prop.Is(properties.Numeric) && leftIgnoringExtend.prop.Is(properties.ExtendNumLet) {
			left = right
			pos += right.width
			continue
		}

		return false
	}

	return true
}

// isBleveIdeographic reports whether r is an ideograph, by the Bleve
// segmenter's definition: the union of Han, Katakana, and Hiragana. See
// https://github.com/blevesearch/segment/blob/master/segment_words.rl
// and its uses of "Ideo".
func isBleveIdeographic(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Katakana, unicode.Hiragana)
}

// BleveIdeographic reports whether token is comprised of ideographs, by
// the Bleve segmenter's definition. This API is experimental.
func BleveIdeographic(token []byte) bool {
	var pos int

	for pos < len(token) {
		right := decode(token[pos:])
		if right.width == 0 {
			return false
		}
		r, w := utf8.DecodeRune(token[pos:])

		if pos == 0 {
			if isBleveIdeographic(r) {
				pos += w
				continue
			}
			return false
		}

		if isBleveIdeographic(r) || right.prop.Is(properties.ExtendNumLet|properties.Ignore) {
			pos += w
			continue
		}

		return false
	}

	return true
}
