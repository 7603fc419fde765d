// internal/splitcli/options_test.go
package splitcli

import "testing"

func TestParseArgs(t *testing.T) {
	opt, err := ParseArgs(NewFlagSet("split-reads"), []string{"--chunks", "3", "reads.fastq"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.N != 3 || opt.Input != "reads.fastq" || opt.Format != FormatFastq {
		t.Fatalf("options: %+v", opt)
	}
}

func TestParseArgsRejects(t *testing.T) {
	cases := [][]string{
		{"--chunks", "0", "reads.fastq"},        // chunk count
		{"--chunks", "2"},                       // stdin has no chunk names
		{"--chunks", "2", "--format", "sam", "x"}, // unknown format
	}
	for _, argv := range cases {
		if _, err := ParseArgs(NewFlagSet("split-reads"), argv); err == nil {
			t.Errorf("argv %v should fail", argv)
		}
	}
}
