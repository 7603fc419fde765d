// core/fastq/record.go
package fastq

import (
	"fmt"
	"io"
	"regexp"
)

// Record is one 4-line FASTQ entry. ID is the full header line
// including the leading '@'; the separator line is never kept, so
// serialization always re-emits a bare '+'.
type Record struct {
	ID   string
	Seq  string
	Qual string
}

// String renders the record as its four lines, separator normalized.
func (r Record) String() string {
	return r.ID + "\n" + r.Seq + "\n+\n" + r.Qual
}

// Write emits the record followed by a newline.
func Write(w io.Writer, r Record) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n+\n%s\n", r.ID, r.Seq, r.Qual)
	return err
}

var headerID = regexp.MustCompile(`^@(.+)/[12]$`)

// IDFromHeader strips the sigil and mate number from a header line:
// "@lolapolooza/1" -> "lolapolooza".
func IDFromHeader(header string) (string, error) {
	m := headerID.FindStringSubmatch(header)
	if m == nil {
		return "", &FormatError{ID: header, Msg: "header did not parse as @<id>/<mate>"}
	}
	return m[1], nil
}
