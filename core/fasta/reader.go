// core/fasta/reader.go
package fasta

import (
	"fmt"
	"io"
	"strings"
)

// Record is one parsed FASTA entry. Seq is the concatenation of every
// sequence line after the header, whitespace stripped per line.
type Record struct {
	ID  string
	Seq string
}

// FormatError reports a framing violation in the input (for example two
// consecutive header lines with no sequence between them).
type FormatError struct {
	ID  string // record whose framing is broken, if known
	Msg string
}

func (e *FormatError) Error() string {
	if e.ID == "" {
		return "fasta: " + e.Msg
	}
	return fmt.Sprintf("fasta: %s (record %q)", e.Msg, e.ID)
}

// Reader is a pull-based FASTA parser. Each Next call consumes exactly
// the lines needed to finish one record; the caller owns the underlying
// stream. After the first non-nil error every later call returns the
// same error. io.EOF signals normal end of input.
type Reader struct {
	sc      *lineScanner
	id      string
	seq     []byte
	started bool
	done    bool
	err     error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: newLineScanner(r), seq: make([]byte, 0, 256)}
}

func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	if r.done {
		return Record{}, io.EOF
	}
	for {
		line, ok := r.sc.scan()
		if !ok {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] == '>' {
			id := strings.TrimSpace(line[1:])
			if id == "" {
				return Record{}, r.fail(&FormatError{Msg: "empty header line"})
			}
			if !r.started {
				r.started = true
				r.id = id
				continue
			}
			if len(r.seq) == 0 {
				return Record{}, r.fail(&FormatError{ID: r.id, Msg: fmt.Sprintf("header with no sequence before %q", id)})
			}
			rec := Record{ID: r.id, Seq: string(r.seq)}
			r.id = id
			r.seq = r.seq[:0]
			return rec, nil
		}
		if !r.started {
			return Record{}, r.fail(&FormatError{Msg: "sequence data before first header"})
		}
		r.seq = append(r.seq, line...)
	}
	if err := r.sc.err(); err != nil {
		return Record{}, r.fail(fmt.Errorf("fasta scan: %w", err))
	}
	r.done = true
	if r.started {
		// The trailing record is flushed even when its sequence is
		// empty; only back-to-back headers are a framing error.
		return Record{ID: r.id, Seq: string(r.seq)}, nil
	}
	return Record{}, io.EOF
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}
