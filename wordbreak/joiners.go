package wordbreak

import "github.com/wordkit/uax29/internal/stringish"

// Joiners allows specification of characters (runes) which should join
// words (tokens) rather than break them. For example, "@" breaks words by
// default, but you might wish to join words into email addresses.
type Joiners[T stringish.Interface] struct {
	// Middle specifies which characters (runes) should join words
	// (tokens) where they would otherwise be split, in the middle of a
	// word.
	//
	// For example, specifying "-" will join hyphenated-words.
	// Specifying "@" will preserve email addresses.
	//
	// Note that . (as in "example.com") and ' (as in "it's") are already
	// mid-joiners; specifying them again is redundant and hurts
	// performance.
	Middle []rune

	// Leading specifies which characters (runes) should join words
	// (tokens) where they would otherwise be split, at the beginning of
	// a word.
	//
	// For example, specifying "#" will join #hashtags. Specifying "."
	// will preserve leading decimals like .01.
	Leading []rune
}

func runesContain(runes []rune, r rune) bool {
	// Benchmarked against a map; for the small slices these hold, linear
	// scan wins.
	for _, c := range runes {
		if c == r {
			return true
		}
	}
	return false
}

func (j *Joiners[T]) leading() func(rune) bool {
	if j == nil || len(j.Leading) == 0 {
		return nil
	}
	return func(r rune) bool { return runesContain(j.Leading, r) }
}

func (j *Joiners[T]) middle() func(rune) bool {
	if j == nil || len(j.Middle) == 0 {
		return nil
	}
	return func(r rune) bool { return runesContain(j.Middle, r) }
}

func (j *Joiners[T]) splitFunc(data T, atEOF bool) (advance int, token T, err error) {
	advance, _, err = scan(data, atEOF, j.leading(), j.middle())
	if advance <= 0 {
		var empty T
		return advance, empty, err
	}
	return advance, data[:advance], err
}
