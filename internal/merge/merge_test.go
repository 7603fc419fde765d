// internal/merge/merge_test.go
package merge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	cfg := Config{Tool: "usearch", Forward: "f.fastq", Reverse: "r.fastq", Output: "out.fastq"}
	assert.Equal(t,
		[]string{"usearch", "-fastq_mergepairs", "f.fastq", "-reverse", "r.fastq", "-fastqout", "out.fastq"},
		Args(cfg))
	assert.Equal(t,
		"usearch -fastq_mergepairs f.fastq -reverse r.fastq -fastqout out.fastq",
		CommandLine(cfg))
}

func TestRunRejectsMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Tool:    "usearch",
		Forward: filepath.Join(dir, "f.fastq"),
		Reverse: filepath.Join(dir, "r.fastq"),
		Output:  filepath.Join(dir, "out.fastq"),
	}
	assert.Error(t, Run(context.Background(), cfg))
}

func TestRunRejectsNonExecutableTool(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "f.fastq")
	r := filepath.Join(dir, "r.fastq")
	for _, p := range []string{f, r} {
		require.NoError(t, os.WriteFile(p, []byte("@x/1\nA\n+\n!\n"), 0o644))
	}
	tool := filepath.Join(dir, "usearch")
	require.NoError(t, os.WriteFile(tool, []byte("not a binary"), 0o644))

	err := Run(context.Background(), Config{
		Tool: tool, Forward: f, Reverse: r,
		Output: filepath.Join(dir, "out.fastq"),
	})
	assert.ErrorContains(t, err, "not an executable")
}

func TestRunRejectsCollision(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "f.fastq")
	r := filepath.Join(dir, "r.fastq")
	out := filepath.Join(dir, "out.fastq")
	for _, p := range []string{f, r, out} {
		require.NoError(t, os.WriteFile(p, []byte("@x/1\nA\n+\n!\n"), 0o644))
	}
	err := Run(context.Background(), Config{Tool: "usearch", Forward: f, Reverse: r, Output: out})
	assert.ErrorContains(t, err, "already exist")
}
