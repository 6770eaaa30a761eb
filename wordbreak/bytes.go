package wordbreak

// FromBytes returns an Iterator for the words in b. Iterate while Next()
// is true, and access the word via Value().
func FromBytes(b []byte) *Iterator[[]byte] {
	return NewIterator(b)
}
