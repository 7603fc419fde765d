// internal/writers/fasta.go
package writers

import (
	"io"

	"readprep-core/fasta"
)

// StartFastaWriter is the FASTA twin of StartFastqWriter.
func StartFastaWriter(out io.Writer, bufSize int) (chan<- fasta.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan fasta.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for rec := range in {
			if err != nil {
				continue
			}
			err = fasta.Write(out, rec)
		}
		errCh <- err
	}()

	return in, errCh
}
