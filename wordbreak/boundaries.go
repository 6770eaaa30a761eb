package wordbreak

import "github.com/wordkit/uax29/internal/stringish"

// Boundaries returns the word boundary positions in data, in strictly
// increasing order, starting with 0 and ending with len(data). For
// non-empty data this is one more position than the number of words plus
// non-word spans combined. For empty data it returns nil.
//
// Boundaries materializes its result; for large inputs, iterate with an
// Iterator instead.
func Boundaries[T stringish.Interface](data T) []int {
	if len(data) == 0 {
		return nil
	}

	positions := make([]int, 0, len(data)/3+2)
	positions = append(positions, 0)

	iter := NewIterator(data)
	for iter.Next() {
		positions = append(positions, iter.End())
	}

	return positions
}
