// internal/splitapp/app.go
package splitapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/xopen"
	"github.com/spf13/pflag"

	"readprep-core/fasta"
	"readprep-core/fastq"
	"readprep/internal/cmdutil"
	"readprep/internal/fileio"
	"readprep/internal/split"
	"readprep/internal/splitcli"
)

const tool = "split-reads"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 4<<10)

	fs := splitcli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		return cmdutil.Usage(fs, outw, stderr, cmdutil.ExitOK)
	}
	opts, err := splitcli.ParseArgs(fs, argv)
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

	log := cmdutil.Logger(stderr, opts.Quiet)

	names := split.ChunkNames(opts.Input, opts.N)
	if err := fileio.CheckForExistence(opts.Input); err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	if err := fileio.CheckForCollisions(names...); err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}

	in, err := fileio.Open(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	defer in.Close()

	outs := make([]io.Writer, 0, opts.N)
	closers := make([]*xopen.Writer, 0, opts.N)
	for _, name := range names {
		w, err := fileio.Create(name)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return cmdutil.ExitRuntime
		}
		outs = append(outs, w)
		closers = append(closers, w)
	}
	closeAll := func() error {
		var first error
		for _, c := range closers {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	var n int
	switch opts.Format {
	case splitcli.FormatFasta:
		n, err = split.Fasta(fasta.NewReader(in), outs)
	default:
		n, err = split.Fastq(fastq.NewReader(in), outs)
	}
	if cerr := closeAll(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitRuntime
	}

	log.Info().Int("records", n).Int("chunks", opts.N).Str("input", opts.Input).Msg("split complete")
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}
