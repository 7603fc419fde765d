// core/demux/table.go

// Package demux assigns reads to samples by the barcode tag embedded
// in their identifiers.
package demux

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DuplicateBarcodeError reports a barcode that appears on more than
// one line of a mapping file.
type DuplicateBarcodeError struct {
	Barcode string
}

func (e *DuplicateBarcodeError) Error() string {
	return fmt.Sprintf("demux: barcode %q mapped more than once", e.Barcode)
}

// Table maps barcodes to sample names. Insertion order is preserved so
// that best-match scanning is deterministic.
type Table struct {
	order   []string
	samples map[string]string
}

func NewTable() *Table {
	return &Table{samples: make(map[string]string)}
}

func (t *Table) Add(barcode, sample string) error {
	if _, dup := t.samples[barcode]; dup {
		return &DuplicateBarcodeError{Barcode: barcode}
	}
	t.order = append(t.order, barcode)
	t.samples[barcode] = sample
	return nil
}

// Barcodes returns the barcodes in the order they were added.
func (t *Table) Barcodes() []string { return t.order }

func (t *Table) Sample(barcode string) (string, bool) {
	s, ok := t.samples[barcode]
	return s, ok
}

func (t *Table) Len() int { return len(t.order) }

// ParseTable reads tab-separated "sample<TAB>barcode" lines. Blank
// lines are skipped; a repeated barcode is an error.
func ParseTable(r io.Reader) (*Table, error) {
	t := NewTable()
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 2 {
			return nil, fmt.Errorf("demux: line %d: expected sample<TAB>barcode, got %d fields", ln, len(f))
		}
		if err := t.Add(f[1], f[0]); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
