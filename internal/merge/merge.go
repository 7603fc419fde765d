// internal/merge/merge.go

// Package merge wraps the external pairwise-read merger. Merging
// itself is delegated wholesale to usearch; this only checks inputs,
// builds the invocation, and verifies the result.
package merge

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"readprep/internal/fileio"
)

type Config struct {
	Tool    string // merger executable, e.g. "usearch"
	Forward string
	Reverse string
	Output  string
}

// Args returns the full argv of the merge invocation.
func Args(cfg Config) []string {
	return []string{
		cfg.Tool,
		"-fastq_mergepairs", cfg.Forward,
		"-reverse", cfg.Reverse,
		"-fastqout", cfg.Output,
	}
}

// CommandLine renders the invocation for logs and dry runs.
func CommandLine(cfg Config) string {
	return strings.Join(Args(cfg), " ")
}

// Run checks inputs and destination, invokes the merger, and verifies
// it produced a non-empty output.
func Run(ctx context.Context, cfg Config) error {
	if err := fileio.CheckForNonempty(cfg.Forward, cfg.Reverse); err != nil {
		return err
	}
	if err := fileio.CheckForCollisions(cfg.Output); err != nil {
		return err
	}
	if strings.ContainsRune(cfg.Tool, '/') {
		if !fileio.IsExecutable(cfg.Tool) {
			return fmt.Errorf("merger %s is not an executable file", cfg.Tool)
		}
	} else if _, err := exec.LookPath(cfg.Tool); err != nil {
		return fmt.Errorf("merger not found: %w", err)
	}

	argv := Args(cfg)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w\n%s", cfg.Tool, err, out)
	}

	if err := fileio.CheckForNonempty(cfg.Output); err != nil {
		return fmt.Errorf("merger produced no output: %w", err)
	}
	return nil
}
