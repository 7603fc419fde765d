// core/fastq/errors.go
package fastq

import "fmt"

// FormatError reports a framing violation: a missing '@' or '+' sigil,
// or an identifier that does not follow the expected grammar.
type FormatError struct {
	ID  string // offending header line
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fastq: %s (header %q)", e.Msg, e.ID)
}

// LengthMismatchError reports sequence and quality lines of unequal
// length within one record.
type LengthMismatchError struct {
	ID      string
	SeqLen  int
	QualLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("fastq: sequence and quality lines are of unequal length (%d vs %d) for ID %s", e.SeqLen, e.QualLen, e.ID)
}
