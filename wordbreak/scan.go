// Package wordbreak segments text into words per the default word
// boundary algorithm in Unicode Standard Annex #29, §4.1:
// https://unicode.org/reports/tr29/#Word_Boundaries
package wordbreak

import (
	"github.com/wordkit/uax29/internal/properties"
	"github.com/wordkit/uax29/internal/stringish"
	"github.com/wordkit/uax29/internal/stringish/utf8"
)

// wordlike is the set of properties that mark a scalar as belonging to a
// "word" proper, as opposed to punctuation or whitespace: ALetter,
// Hebrew_Letter, Numeric and Katakana. SplitWords keeps only the spans
// that contain at least one scalar in this set.
const wordlike = properties.ALetter | properties.HebrewLetter | properties.Numeric | properties.Katakana

// scalar bundles everything the rule table needs to know about one decoded
// code point: its Word_Break property, whether it is Extended_Pictographic
// (kept separate from Property per spec, since Extended_Pictographic is a
// membership test rather than a Word_Break value), and its encoded width
// so the caller can advance past it.
type scalar struct {
	prop         properties.Property
	pictographic bool
	width        int
}

func decode[T stringish.Interface](data T) scalar {
	r, w := utf8.DecodeRune(data)
	if w == 0 {
		return scalar{}
	}
	return scalar{
		prop:         properties.Default.PropertyOf(r),
		pictographic: properties.IsExtendedPictographic(r),
		width:        w,
	}
}

// forwardHasAny reports whether, scanning forward from the start of data
// and skipping scalars in properties.Ignore (Extend, Format, ZWJ), the
// first scalar that remains belongs to categories. This is the "lookahead"
// half of WB6, WB7b and WB12, which all peek past the boundary under
// consideration before committing to keep it open.
func forwardHasAny[T stringish.Interface](categories properties.Property, data T) bool {
	var pos int
	for pos < len(data) {
		s := decode(data[pos:])
		if s.width == 0 {
			return false
		}
		if s.prop.Is(properties.Ignore) {
			pos += s.width
			continue
		}
		return s.prop.Is(categories)
	}
	return false
}

// scan finds the next word boundary in data and reports how far to
// advance to reach it, whether the resulting token contains a word-like
// scalar (ALetter, Hebrew_Letter, Numeric or Katakana), and an error.
//
// scan never actually returns a non-nil error: it is total over its input
// (spec §7). The error return exists so callers can be adapted directly
// into a bufio.SplitFunc, which requires one.
//
// scan implements UAX #29 §4.1, WB1 through WB999, in the priority order
// of the published rule table. Each rule either "keeps" (the scan
// continues past the scalar just read, folding it into the open token)
// or "emits" (the scan stops, and the token ends at the current
// position). leading and mid, if non-nil, widen what counts as an
// AHLetter/MidNumLet scalar at the very start of the token or in its
// interior respectively -- see Joiners.
func scan[T stringish.Interface](data T, atEOF bool, leading, mid func(rune) bool) (advance int, wordlike bool, err error) {
	if len(data) == 0 {
		return 0, false, nil
	}

	var pos int
	var right scalar

	// WB1: sot always advances past the first scalar.
	right = decode(data)
	if right.width == 0 {
		if !atEOF {
			return 0, false, nil
		}
	}
	// A leading joiner counts as AHLetter for the rules below, but does
	// not by itself make the token word-like.
	sawWordlike := right.prop.Is(wordlike)
	if leading != nil {
		if r, _ := utf8.DecodeRune(data); leading(r) {
			right.prop |= properties.AHLetter
		}
	}
	pos += right.width

	var left, leftIgnoringExtend, leftBeforeThat scalar
	var riRun int

	// commit folds right into the open token: it is only called once a
	// rule has decided to keep scanning past it.
	commit := func() {
		if right.prop.Is(wordlike) {
			sawWordlike = true
		}
		pos += right.width
	}

	for {
		if pos == len(data) {
			if !atEOF {
				// Token extends past the data we have; ask for more.
				return 0, false, nil
			}
			// WB2: eot always ends the token.
			break
		}

		left = right
		if !left.prop.Is(properties.Ignore) {
			leftBeforeThat = leftIgnoringExtend
			leftIgnoringExtend = left
		}

		right = decode(data[pos:])
		if right.width == 0 {
			if atEOF {
				pos = len(data)
				break
			}
			return 0, false, nil
		}
		if mid != nil {
			if r, _ := utf8.DecodeRune(data[pos:]); mid(r) {
				right.prop |= properties.MidNumLet
			}
		}
		// Neither scalar carries a bit any rule below tests, and neither
		// is Extended_Pictographic (which always co-occurs with a ZWJ on
		// one side, and ZWJ is a bit): nothing left can apply.
		if left.prop == properties.Other && right.prop == properties.Other {
			break
		}

		// WB3
		if right.prop.Is(properties.LF) && left.prop.Is(properties.CR) {
			commit()
			continue
		}

		// WB3a, WB3b
		if (left.prop | right.prop).Is(properties.Newline | properties.CR | properties.LF) {
			break
		}

		// WB3c
		if right.pictographic && left.prop.Is(properties.ZWJ) {
			commit()
			continue
		}

		// WB3d
		if right.prop.Is(properties.WSegSpace) && left.prop.Is(properties.WSegSpace) {
			commit()
			continue
		}

		// WB4: ignore Extend, Format and ZWJ for all of the rules below.
		if right.prop.Is(properties.Ignore) {
			commit()
			continue
		}

		// WB5
		if right.prop.Is(properties.AHLetter) && leftIgnoringExtend.prop.Is(properties.AHLetter) {
			commit()
			continue
		}

		// WB6
		if right.prop.Is(properties.MidLetter|properties.MidNumLetQ) && leftIgnoringExtend.prop.Is(properties.AHLetter) {
			if forwardHasAny(properties.AHLetter, data[pos+right.width:]) {
				commit()
				continue
			}
		}

		// WB7
		if right.prop.Is(properties.AHLetter) &&
			leftIgnoringExtend.prop.Is(properties.MidLetter|properties.MidNumLetQ) &&
			leftBeforeThat.prop.Is(properties.AHLetter) {
			commit()
			continue
		}

		// WB7a
		if right.prop.Is(properties.SingleQuote) && leftIgnoringExtend.prop.Is(properties.HebrewLetter) {
			commit()
			continue
		}

		// WB7b
		if right.prop.Is(properties.DoubleQuote) && leftIgnoringExtend.prop.Is(properties.HebrewLetter) {
			if forwardHasAny(properties.HebrewLetter, data[pos+right.width:]) {
				commit()
				continue
			}
		}

		// WB7c
		if right.prop.Is(properties.HebrewLetter) &&
			leftIgnoringExtend.prop.Is(properties.DoubleQuote) &&
			leftBeforeThat.prop.Is(properties.HebrewLetter) {
			commit()
			continue
		}

		// WB8, WB9, WB10
		if right.prop.Is(properties.Numeric|properties.AHLetter) && leftIgnoringExtend.prop.Is(properties.Numeric|properties.AHLetter) {
			commit()
			continue
		}

		// WB11
		if right.prop.Is(properties.Numeric) &&
			leftIgnoringExtend.prop.Is(properties.MidNum|properties.MidNumLetQ) &&
			leftBeforeThat.prop.Is(properties.Numeric) {
			commit()
			continue
		}

		// WB12
		if right.prop.Is(properties.MidNum|properties.MidNumLetQ) && leftIgnoringExtend.prop.Is(properties.Numeric) {
			if forwardHasAny(properties.Numeric, data[pos+right.width:]) {
				commit()
				continue
			}
		}

		// WB13
		if right.prop.Is(properties.Katakana) && leftIgnoringExtend.prop.Is(properties.Katakana) {
			commit()
			continue
		}

		// WB13a
		if right.prop.Is(properties.ExtendNumLet) &&
			leftIgnoringExtend.prop.Is(properties.AHLetter|properties.Numeric|properties.Katakana|properties.ExtendNumLet) {
			commit()
			continue
		}

		// WB13b
		if right.prop.Is(properties.AHLetter|properties.Numeric|properties.Katakana) && leftIgnoringExtend.prop.Is(properties.ExtendNumLet) {
			commit()
			continue
		}

		// WB15, WB16: pair up Regional_Indicator scalars from the start
		// of each maximal run. riRun counts the RIs seen as right inside
		// this loop; the token's first scalar, decoded before the loop,
		// is not counted. A boundary between left and right is inhibited
		// exactly when riRun is odd after the increment, i.e. right is
		// the 2nd RI of the token, so each token holds at most one pair.
		if right.prop.Is(properties.RegionalIndicator) {
			riRun++
		} else {
			riRun = 0
		}
		if leftIgnoringExtend.prop.Is(properties.RegionalIndicator) && right.prop.Is(properties.RegionalIndicator) && riRun%2 == 1 {
			commit()
			continue
		}

		// WB999
		break
	}

	return pos, sawWordlike, nil
}
