package wordbreak

import (
	"bufio"
	"io"
)

// NewScanner returns a bufio.Scanner that tokenizes words per
// https://unicode.org/reports/tr29/#Word_Boundaries. Iterate by calling
// Scan() until false; see the bufio.Scanner docs for details.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Split(SplitFunc)
	return scanner
}
