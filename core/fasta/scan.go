// core/fasta/scan.go
package fasta

import (
	"bufio"
	"io"
)

// lineScanner wraps bufio.Scanner with a buffer large enough for
// single-line sequences of unusual length.
type lineScanner struct {
	sc *bufio.Scanner
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &lineScanner{sc: sc}
}

func (l *lineScanner) scan() (string, bool) {
	if !l.sc.Scan() {
		return "", false
	}
	return l.sc.Text(), true
}

func (l *lineScanner) err() error { return l.sc.Err() }
