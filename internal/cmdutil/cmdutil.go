// internal/cmdutil/cmdutil.go

// Package cmdutil carries the run-loop boilerplate shared by every
// tool: help and version plumbing, buffered output flushing, and the
// broken-pipe convention (a consumer hanging up is a clean exit).
package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readprep/internal/version"
	"readprep/internal/writers"
)

// Exit codes shared by all tools.
const (
	ExitOK      = 0
	ExitNoMatch = 1
	ExitUsage   = 2
	ExitRuntime = 3
	ExitSignal  = 130
)

// Usage prints the flag set's usage to outw and flushes, mapping the
// result to an exit code.
func Usage(fs *pflag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	return Flush(outw, stderr, code)
}

// PrintVersion reports the tool version and flushes.
func PrintVersion(tool string, outw *bufio.Writer, stderr io.Writer) int {
	_, _ = fmt.Fprintf(outw, "%s version %s\n", tool, version.Version)
	return Flush(outw, stderr, ExitOK)
}

// Flush drains outw. Broken pipes exit clean; other write errors are
// runtime failures.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	return code
}
