package wordbreak

// FromString returns an Iterator for the words in s. Iterate while
// Next() is true, and access the word via Value().
func FromString(s string) *Iterator[string] {
	return NewIterator(s)
}
