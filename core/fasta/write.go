// core/fasta/write.go
package fasta

import (
	"fmt"
	"io"
)

// Write emits one record in FASTA form.
func Write(w io.Writer, rec Record) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", rec.ID, rec.Seq)
	return err
}
