// internal/writers/fastq.go
package writers

import (
	"io"

	"readprep-core/fastq"
)

// StartFastqWriter spins up a writer goroutine for FASTQ records.
// Close the returned channel, then receive exactly one value from the
// error channel.
func StartFastqWriter(out io.Writer, bufSize int) (chan<- fastq.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan fastq.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for rec := range in {
			if err != nil {
				continue // drain
			}
			err = fastq.Write(out, rec)
		}
		errCh <- err
	}()

	return in, errCh
}
