package properties

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// The range tables below are ported from the hand-curated Word_Break
// helper tables in clipperhouse/uax29's is package: a handful of
// punctuation and symbol code points that UAX #29 calls out by name
// rather than by general Unicode category, plus the general-category
// tables (unicode.Mn, unicode.Nd, ...) that cover the bulk of the
// assignment. https://unicode.org/reports/tr29/#Word_Break_Property_Values
//
// Code points are given as hex literals rather than rune literals to
// avoid transcription mistakes between visually identical glyphs at
// different code points (e.g. ASCII vs. fullwidth punctuation).
var midLetterRunes = rangetable.New(
	0x003A, // COLON
	0x00B7, // MIDDLE DOT
	0x2027, // HYPHENATION POINT
	0x058A, // ARMENIAN HYPHEN
	0x05F4, // HEBREW PUNCTUATION GERSHAYIM
	0xFE13, // PRESENTATION FORM FOR VERTICAL COLON
	0xFF1A, // FULLWIDTH COLON
)

var midNumLetRunes = rangetable.New(
	0x002E, // FULL STOP
	0x2019, // RIGHT SINGLE QUOTATION MARK
	0x2024, // ONE DOT LEADER
	0xFE52, // SMALL FULL STOP
	0xFF07, // FULLWIDTH APOSTROPHE
	0xFF0E, // FULLWIDTH FULL STOP
)

var midNumRunes = rangetable.New(
	0x002C, // COMMA
	0x003B, // SEMICOLON
	0x037E, // GREEK QUESTION MARK
	0x0589, // ARMENIAN FULL STOP
	0x060C, // ARABIC COMMA
	0x060D, // ARABIC DATE SEPARATOR
	0x066C, // ARABIC THOUSANDS SEPARATOR
	0x07F8, // NKO COMMA
	0x2044, // FRACTION SLASH
	0xFE10, // PRESENTATION FORM FOR VERTICAL COMMA
	0xFE14, // PRESENTATION FORM FOR VERTICAL SEMICOLON
	0xFE50, // SMALL COMMA
	0xFE54, // SMALL SEMICOLON
	0xFF0C, // FULLWIDTH COMMA
	0xFF1B, // FULLWIDTH SEMICOLON
)

var newlineRunes = rangetable.New(
	0x000B, // LINE TABULATION
	0x000C, // FORM FEED
	0x0085, // NEXT LINE
	0x2028, // LINE SEPARATOR
	0x2029, // PARAGRAPH SEPARATOR
)

var katakanaExtraRunes = rangetable.New(
	0x3031, 0x3032, 0x3033, 0x3034, 0x3035,
	0x309B, 0x309C,
	0x30A0, 0x30FC,
	0xFF70,
)

// emojiModifierRunes are the Fitzpatrick skin-tone modifiers; UAX #29
// treats them as Extend so WB4 skips over them.
var emojiModifierRunes = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x1F3FB, Hi: 0x1F3FF, Stride: 1},
	},
}

// extendedPictographicRanges approximates the Extended_Pictographic column
// of emoji-data.txt: the symbol/emoji blocks, plus a handful of individual
// pre-Unicode-9 emoji code points that UAX #29 fixtures exercise. The real
// emoji-data.txt is an external collaborator outside this repository's
// scope (see spec.md §1, §6); this is a representative hand-built stand-in,
// documented in DESIGN.md.
var extendedPictographicRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x203C, Hi: 0x203C, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x21AA, Stride: 1},
		{Lo: 0x231A, Hi: 0x231B, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23E9, Hi: 0x23FA, Stride: 1},
		{Lo: 0x25AA, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1},
		{Lo: 0x2E00, Hi: 0x2E52, Stride: 1},
		{Lo: 0xFE0E, Hi: 0xFE0F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1FFFF, Stride: 1},
	},
}

func isALetter(r rune) bool {
	switch {
	case isHebrewLetter(r), unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r), unicode.Is(unicode.Ideographic, r):
		return false
	}
	return isAlphabetic(r)
}

func isAlphabetic(r rune) bool {
	switch {
	case r == '_':
		return true
	case unicode.IsLetter(r):
		return true
	case unicode.Is(unicode.Nl, r):
		return true
	case unicode.Is(unicode.Other_Alphabetic, r):
		return true
	}
	return false
}

func isHebrewLetter(r rune) bool {
	return unicode.Is(unicode.Hebrew, r) && unicode.IsLetter(r)
}

func isKatakana(r rune) bool {
	return unicode.Is(unicode.Katakana, r) || unicode.Is(katakanaExtraRunes, r)
}

func isMidLetter(r rune) bool {
	return unicode.Is(midLetterRunes, r)
}

func isMidNumLet(r rune) bool {
	return unicode.Is(midNumLetRunes, r)
}

func isMidNum(r rune) bool {
	return unicode.Is(midNumRunes, r)
}

func isNewline(r rune) bool {
	return unicode.Is(newlineRunes, r)
}

func isNumeric(r rune) bool {
	switch {
	case 0xFF10 <= r && r <= 0xFF19:
		return true
	default:
		return unicode.Is(unicode.Nd, r)
	}
}

func isExtendNumLet(r rune) bool {
	return unicode.Is(unicode.Pc, r) || r == 0x202F
}

func isExtend(r rune) bool {
	switch {
	case r == 0x200C: // ZERO WIDTH NON-JOINER
		return true
	case unicode.Is(emojiModifierRunes, r):
		return true
	case unicode.Is(unicode.Mn, r), unicode.Is(unicode.Me, r):
		return true
	}
	return false
}

func isFormat(r rune) bool {
	return unicode.Is(unicode.Cf, r)
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// wsegSpaceExclusions are the Zs code points UAX #29 withholds from
// WSegSpace despite their general category: the no-break spaces, which
// behave as ordinary punctuation rather than segmentable whitespace.
// 0x202F is already claimed by isExtendNumLet above; listed again here
// so this function is correct on its own terms.
var wsegSpaceExclusions = rangetable.New(0x00A0, 0x2007, 0x202F)

func isWSegSpace(r rune) bool {
	return unicode.Is(unicode.Zs, r) && !unicode.Is(wsegSpaceExclusions, r)
}
