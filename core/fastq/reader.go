// core/fastq/reader.go
package fastq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Config controls the two independently toggleable validations.
type Config struct {
	CheckSigils  bool // header starts with '@', separator with '+'
	CheckLengths bool // len(seq) == len(qual)
}

// Reader is a pull-based FASTQ parser consuming input four lines at a
// time. Lines are right-trimmed before use. A trailing group of fewer
// than four lines is discarded silently.
type Reader struct {
	sc   *bufio.Scanner
	cfg  Config
	err  error
	done bool
}

// NewReader returns a Reader with both validations enabled.
func NewReader(r io.Reader) *Reader {
	return NewReaderConfig(r, Config{CheckSigils: true, CheckLengths: true})
}

func NewReaderConfig(r io.Reader, cfg Config) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc, cfg: cfg}
}

func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	if r.done {
		return Record{}, io.EOF
	}

	lines := make([]string, 0, 4)
	for len(lines) < 4 && r.sc.Scan() {
		lines = append(lines, strings.TrimRightFunc(r.sc.Text(), unicode.IsSpace))
	}
	if len(lines) < 4 {
		if err := r.sc.Err(); err != nil {
			return Record{}, r.fail(fmt.Errorf("fastq scan: %w", err))
		}
		r.done = true
		return Record{}, io.EOF
	}

	at, seq, plus, qual := lines[0], lines[1], lines[2], lines[3]
	if r.cfg.CheckSigils {
		if !strings.HasPrefix(at, "@") {
			return Record{}, r.fail(&FormatError{ID: at, Msg: "header does not start with '@'"})
		}
		if !strings.HasPrefix(plus, "+") {
			return Record{}, r.fail(&FormatError{ID: at, Msg: "separator does not start with '+'"})
		}
	}
	if r.cfg.CheckLengths && len(seq) != len(qual) {
		return Record{}, r.fail(&LengthMismatchError{ID: at, SeqLen: len(seq), QualLen: len(qual)})
	}
	return Record{ID: at, Seq: seq, Qual: qual}, nil
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}
