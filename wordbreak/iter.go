//go:build go1.23

package wordbreak

import (
	"io"
	"iter"

	"github.com/wordkit/uax29/internal/stringish"
)

// All is an iterator over the words in data, for use with range.
func All[T stringish.Interface](data T) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := NewIterator(data)
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Scan is an iterator over the words read from r, for use with range.
func Scan(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := NewScanner(r)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}
