// internal/convertapp/app.go
package convertapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readprep-core/fastq"
	"readprep-core/qual"
	"readprep/internal/cmdutil"
	"readprep/internal/convertcli"
	"readprep/internal/fileio"
	"readprep/internal/writers"
)

const tool = "convert-quality"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := convertcli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	opts, err := convertcli.ParseArgs(fs, argv)
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

	in, err := fileio.Open(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	defer in.Close()

	out := io.Writer(outw)
	if opts.Output != "-" {
		w, err := fileio.Create(opts.Output)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return cmdutil.ExitUsage
		}
		defer w.Close()
		out = w
	}

	src := fastq.NewReader(in)
	wch, werr := writers.StartFastqWriter(out, 256)
	converted := 0
	var runErr error
	for runErr == nil {
		if err := parent.Err(); err != nil {
			runErr = err
			break
		}
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			runErr = err
			break
		}
		rec.Qual = qual.Convert(rec.Qual)
		wch <- rec
		converted++
	}
	close(wch)

	if err := <-werr; writers.IsBrokenPipe(err) {
		return cmdutil.ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitRuntime
	}
	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return cmdutil.ExitSignal
		}
		fmt.Fprintln(stderr, runErr)
		return cmdutil.ExitRuntime
	}

	log.Info().Int("records", converted).Msg("quality conversion complete")
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}
