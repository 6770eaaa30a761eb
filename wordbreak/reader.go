package wordbreak

import (
	"bufio"
	"io"
)

// Scanner splits words from an io.Reader, per
// https://unicode.org/reports/tr29/#Word_Boundaries. It embeds a
// *bufio.Scanner, so its methods (Scan, Text, Bytes, Err, Buffer, ...) are
// available directly.
type Scanner struct {
	*bufio.Scanner
}

// FromReader returns a Scanner for the words read from r. Iterate by
// calling Scan() until false, then check Err().
func FromReader(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Split(SplitFunc)
	return &Scanner{Scanner: s}
}

// Joiners widens what counts as a word character for this Scanner,
// per j. See the [Joiners] type.
func (sc *Scanner) Joiners(j *Joiners[[]byte]) {
	sc.Split(func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		return j.splitFunc(data, atEOF)
	})
}
