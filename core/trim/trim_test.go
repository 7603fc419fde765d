// core/trim/trim_test.go
package trim

import (
	"io"
	"strings"
	"testing"

	"readprep-core/fastq"
)

const read = "@lolapolooza\nTAAAACATCATCATCAT\n+whatever\nabcdefghijklmnopq\n"

func TestTrimmerTrimsMatch(t *testing.T) {
	tr := New(fastq.NewReader(strings.NewReader(read)), Config{Primer: "AAAA", MaxMismatches: 1})

	rec, err := tr.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got := rec.String(); got != "@lolapolooza\nCATCATCATCAT\n+\nfghijklmnopq" {
		t.Fatalf("trimmed record: %q", got)
	}
	if _, err := tr.Next(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
	if s := tr.Stats(); s.Successes != 1 || s.Failures != 0 {
		t.Fatalf("stats: %+v", s)
	}
}

func TestTrimmerDropsNonMatch(t *testing.T) {
	in := "@good\nTAAAACATCAT\n+\nabcdefghijk\n@bad\nGGGGGGGGGGG\n+\nabcdefghijk\n"
	tr := New(fastq.NewReader(strings.NewReader(in)), Config{Primer: "AAAA", MaxMismatches: 1})

	rec, err := tr.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if rec.ID != "@good" {
		t.Fatalf("kept %q", rec.ID)
	}
	if _, err := tr.Next(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
	if s := tr.Stats(); s.Successes != 1 || s.Failures != 1 {
		t.Fatalf("stats: %+v", s)
	}
}

func TestTrimmerKeepUnmatched(t *testing.T) {
	in := "@bad\nGGGGGGGG\n+\nabcdefgh\n"
	tr := New(fastq.NewReader(strings.NewReader(in)), Config{Primer: "AAAA", MaxMismatches: 0, KeepUnmatched: true})

	rec, err := tr.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if rec.Seq != "GGGGGGGG" || rec.Qual != "abcdefgh" {
		t.Fatalf("record modified: %+v", rec)
	}
	if s := tr.Stats(); s.Failures != 1 || s.Successes != 0 {
		t.Fatalf("stats: %+v", s)
	}
}

func TestTrimmerPropagatesFormatError(t *testing.T) {
	tr := New(fastq.NewReader(strings.NewReader("oops\nAAA\n+\n!!!\n")), Config{Primer: "AAAA", MaxMismatches: 1})
	if _, err := tr.Next(); err == nil || err == io.EOF {
		t.Fatalf("format error not surfaced: %v", err)
	}
}
