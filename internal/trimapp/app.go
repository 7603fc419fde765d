// internal/trimapp/app.go
package trimapp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readprep-core/fastq"
	"readprep-core/trim"
	"readprep/internal/cmdutil"
	"readprep/internal/fileio"
	"readprep/internal/trimcli"
	"readprep/internal/writers"
	"readprep/pkg/api"
)

const tool = "remove-primers"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := trimcli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		return cmdutil.Usage(fs, outw, stderr, cmdutil.ExitOK)
	}
	opts, err := trimcli.ParseArgs(fs, argv)
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

	tr := trim.New(fastq.NewReader(in), trim.Config{
		Primer:        opts.Primer,
		MaxMismatches: opts.MaxMismatches,
		Window:        opts.Window,
		KeepUnmatched: opts.KeepUnmatched,
	})

	wch, werr := writers.StartFastqWriter(out, 256)
	var runErr error
	for runErr == nil {
		if err := parent.Err(); err != nil {
			runErr = err
			break
		}
		rec, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			runErr = err
			break
		}
		wch <- rec
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

	s := tr.Stats()
	log.Info().Int("trimmed", s.Successes).Int("dropped", s.Failures).Msg("primer removal complete")
	if opts.StatsJSON {
		_ = json.NewEncoder(stderr).Encode(api.StatsV1{Tool: tool, Successes: s.Successes, Failures: s.Failures})
	}
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}
