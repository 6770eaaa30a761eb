package wordbreak

import "github.com/wordkit/uax29/internal/stringish"

// Iterator is a generic, pull-based iterator over the words in a string or
// byte slice. Iterate while Next() is true, and access the word via
// Value().
type Iterator[T stringish.Interface] struct {
	data     T
	pos      int
	start    int
	token    T
	wordlike bool
	leading  func(rune) bool
	middle   func(rune) bool
}

// NewIterator creates a new Iterator for the given data.
func NewIterator[T stringish.Interface](data T) *Iterator[T] {
	return &Iterator[T]{data: data}
}

// SetText sets the text for the iterator to operate on, and resets all
// state.
func (iter *Iterator[T]) SetText(data T) {
	iter.data = data
	iter.Reset()
}

// Joiners widens what counts as a word character per j; see [Joiners].
func (iter *Iterator[T]) Joiners(j *Joiners[T]) {
	iter.leading = j.leading()
	iter.middle = j.middle()
}

// Next advances the iterator to the next token. It returns false when
// there are no remaining tokens.
func (iter *Iterator[T]) Next() bool {
	if iter.pos == len(iter.data) {
		return false
	}
	if iter.pos > len(iter.data) {
		panic("scan advanced beyond the end of the data")
	}

	iter.start = iter.pos

	advance, wordlike, err := scan(iter.data[iter.pos:], true, iter.leading, iter.middle)
	if err != nil {
		panic(err)
	}
	if advance <= 0 {
		panic("scan returned a zero or negative advance")
	}

	iter.pos += advance
	if iter.pos > len(iter.data) {
		panic("scan advanced beyond the end of the data")
	}

	iter.token = iter.data[iter.start:iter.pos]
	iter.wordlike = wordlike

	return true
}

// Value returns the current token.
func (iter *Iterator[T]) Value() T {
	return iter.token
}

// Wordlike reports whether the current token contains at least one
// scalar in {ALetter, Hebrew_Letter, Numeric, Katakana} -- the "is this a
// word, not just punctuation or whitespace" test used by SplitWords.
func (iter *Iterator[T]) Wordlike() bool {
	return iter.wordlike
}

// Start returns the position of the current token in the original data.
func (iter *Iterator[T]) Start() int {
	return iter.start
}

// End returns the position after the current token in the original data.
func (iter *Iterator[T]) End() int {
	return iter.pos
}

// Reset resets the iterator to the beginning of the data.
func (iter *Iterator[T]) Reset() {
	iter.pos = 0
	iter.start = 0
	var empty T
	iter.token = empty
	iter.wordlike = false
}
