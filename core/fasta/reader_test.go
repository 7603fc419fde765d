// core/fasta/reader_test.go
package fasta

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func collect(t *testing.T, in string) []Record {
	t.Helper()
	r := NewReader(strings.NewReader(in))
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		out = append(out, rec)
	}
}

func TestReaderGoodContent(t *testing.T) {
	got := collect(t, ">foo\nAAA\nAAA\n>bar\nCCC\n>baz\nGGG")
	want := []Record{
		{ID: "foo", Seq: "AAAAAA"},
		{ID: "bar", Seq: "CCC"},
		{ID: "baz", Seq: "GGG"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestReaderConsecutiveHeaders(t *testing.T) {
	r := NewReader(strings.NewReader(">foo\nAAA\nAAA\n>bar\n>baz\nGGG"))
	if _, err := r.Next(); err != nil {
		t.Fatalf("first record: %v", err)
	}
	_, err := r.Next()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want FormatError, got %v", err)
	}
	if fe.ID != "bar" {
		t.Errorf("error names record %q, want %q", fe.ID, "bar")
	}
	// The error is sticky.
	if _, err2 := r.Next(); err2 != err {
		t.Errorf("error not sticky: %v vs %v", err2, err)
	}
}

// Splitting a sequence over more lines must not change the parsed
// sequence string.
func TestReaderLineSplitInvariant(t *testing.T) {
	joined := collect(t, ">x\nACGTACGT\n")
	split := collect(t, ">x\nAC\nGT\nAC\nGT\n")
	if len(joined) != 1 || len(split) != 1 || joined[0] != split[0] {
		t.Fatalf("line split changed parse: %+v vs %+v", joined, split)
	}
}

func TestReaderSequenceBeforeHeader(t *testing.T) {
	r := NewReader(strings.NewReader("AAA\n>foo\nCCC\n"))
	_, err := r.Next()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want FormatError, got %v", err)
	}
}

func TestReaderTrailingEmptyRecord(t *testing.T) {
	got := collect(t, ">foo\nAAA\n>bar\n")
	if len(got) != 2 || got[1].ID != "bar" || got[1].Seq != "" {
		t.Fatalf("trailing record: %+v", got)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
}
