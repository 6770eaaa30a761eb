package wordbreak

import "github.com/wordkit/uax29/internal/stringish"

// Span is the substring between two adjacent word boundaries.
type Span[T stringish.Interface] struct {
	Start int
	End   int
	Text  T
}

// Length returns the length, in the units of T, of the span.
func (s Span[T]) Length() int {
	return s.End - s.Start
}

// Spans returns the spans of s in order. Each span borrows its Text from
// s; no copy of the input is made.
func Spans[T stringish.Interface](data T) []Span[T] {
	var spans []Span[T]

	iter := NewIterator(data)
	for iter.Next() {
		spans = append(spans, Span[T]{
			Start: iter.Start(),
			End:   iter.End(),
			Text:  iter.Value(),
		})
	}

	return spans
}

// SplitWords returns the words in data, discarding spans that contain no
// scalar in {ALetter, Hebrew_Letter, Numeric, Katakana}: spans of
// punctuation, whitespace or symbols, and also spans of Han, Hiragana
// or emoji, whose Word_Break property is Other.
func SplitWords[T stringish.Interface](data T) []T {
	var words []T

	iter := NewIterator(data)
	for iter.Next() {
		if iter.Wordlike() {
			words = append(words, iter.Value())
		}
	}

	return words
}
