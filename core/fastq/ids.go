// core/fastq/ids.go
package fastq

import "io"

// IDs drains the reader and returns the bare identifier of every
// record, in input order.
func IDs(r *Reader) ([]string, error) {
	var out []string
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		id, err := IDFromHeader(rec.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
}

// Filter yields only the records whose bare identifier is in a fixed
// set. It is lazy: one Next call pulls records from the source until a
// match is found.
type Filter struct {
	src  *Reader
	keep map[string]struct{}
}

func NewFilter(src *Reader, ids []string) *Filter {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	return &Filter{src: src, keep: keep}
}

func (f *Filter) Next() (Record, error) {
	for {
		rec, err := f.src.Next()
		if err != nil {
			return Record{}, err
		}
		id, err := IDFromHeader(rec.ID)
		if err != nil {
			return Record{}, err
		}
		if _, ok := f.keep[id]; ok {
			return rec, nil
		}
	}
}
