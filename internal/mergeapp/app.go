// internal/mergeapp/app.go
package mergeapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readprep/internal/cmdutil"
	"readprep/internal/merge"
	"readprep/internal/mergecli"
)

const tool = "merge-pairs"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 4<<10)

	fs := mergecli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		return cmdutil.Usage(fs, outw, stderr, cmdutil.ExitOK)
	}
	opts, err := mergecli.ParseArgs(fs, argv)
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

	cfg := merge.Config{
		Tool:    opts.Tool,
		Forward: opts.Forward,
		Reverse: opts.Reverse,
		Output:  opts.Output,
	}

	if opts.DryRun {
		fmt.Fprintln(outw, merge.CommandLine(cfg))
		return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
	}

	if err := merge.Run(parent, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return cmdutil.ExitSignal
		}
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitRuntime
	}

	log.Info().Str("forward", opts.Forward).Str("reverse", opts.Reverse).Str("output", opts.Output).Msg("pairs merged")
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}
