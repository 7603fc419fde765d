// internal/split/split.go

// Package split distributes the records of one read file across N
// chunk files, round-robin, so chunks stay balanced regardless of
// record size skew.
package split

import (
	"fmt"
	"io"

	"readprep-core/fasta"
	"readprep-core/fastq"
)

// ChunkNames derives the destination names input.0 … input.N-1.
func ChunkNames(input string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s.%d", input, i)
	}
	return names
}

// Fastq spreads records across outs. Separators are normalized on
// re-emission. Returns the number of records written.
func Fastq(src *fastq.Reader, outs []io.Writer) (int, error) {
	count := 0
	for {
		rec, err := src.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		if err := fastq.Write(outs[count%len(outs)], rec); err != nil {
			return count, err
		}
		count++
	}
}

// Fasta is the FASTA twin of Fastq.
func Fasta(src *fasta.Reader, outs []io.Writer) (int, error) {
	count := 0
	for {
		rec, err := src.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		if err := fasta.Write(outs[count%len(outs)], rec); err != nil {
			return count, err
		}
		count++
	}
}
