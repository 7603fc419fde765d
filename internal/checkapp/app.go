// internal/checkapp/app.go
package checkapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readprep-core/fastq"
	"readprep-core/qual"
	"readprep/internal/checkcli"
	"readprep/internal/cmdutil"
	"readprep/internal/fileio"
)

const tool = "check-format"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 4<<10)

	fs := checkcli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	opts, err := checkcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cmdutil.Usage(fs, outw, stderr, cmdutil.ExitOK)
		}
		fmt.Fprintln(stderr, err)
		return cmdutil.Usage(fs, outw, stderr, cmdutil.ExitUsage)
	}
	if opts.Version {
		return cmdutil.PrintVersion(tool, outw, stderr)
	}

	in, err := fileio.Open(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	defer in.Close()

	src := fastq.NewReader(in)
	verdict := qual.Ambiguous
	seen := 0
	for opts.MaxRecords == 0 || seen < opts.MaxRecords {
		if err := parent.Err(); err != nil {
			return cmdutil.ExitSignal
		}
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return cmdutil.ExitRuntime
		}
		enc, err := qual.Classify(rec.Qual)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", rec.ID, err)
			return cmdutil.ExitRuntime
		}
		if verdict, err = qual.Combine(verdict, enc); err != nil {
			fmt.Fprintf(stderr, "%s: file mixes encodings: %v\n", rec.ID, err)
			return cmdutil.ExitRuntime
		}
		seen++
	}

	fmt.Fprintln(outw, verdict)
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}
