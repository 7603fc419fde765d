// internal/demuxapp/app.go
package demuxapp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readprep-core/demux"
	"readprep-core/fastq"
	"readprep/internal/cmdutil"
	"readprep/internal/demuxcli"
	"readprep/internal/fileio"
	"readprep/internal/writers"
	"readprep/pkg/api"
)

const tool = "map-barcodes"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := demuxcli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		return cmdutil.Usage(fs, outw, stderr, cmdutil.ExitOK)
	}
	opts, err := demuxcli.ParseArgs(fs, argv)
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

	bc, err := fileio.Open(opts.BarcodeFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	table, err := demux.ParseTable(bc)
	_ = bc.Close()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	log.Info().Int("barcodes", table.Len()).Str("file", opts.BarcodeFile).Msg("barcode table loaded")

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

	dm := demux.NewRenamer(fastq.NewReader(in), table, opts.MaxMismatches)

	wch, werr := writers.StartFastqWriter(out, 256)
	var runErr error
	for runErr == nil {
		if err := parent.Err(); err != nil {
			runErr = err
			break
		}
		rec, err := dm.Next()
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

	s := dm.Stats()
	log.Info().Int("assigned", s.Successes).Int("dropped", s.Failures).Msg("demultiplexing complete")
	if opts.StatsJSON {
		_ = json.NewEncoder(stderr).Encode(api.StatsV1{Tool: tool, Successes: s.Successes, Failures: s.Failures})
	}
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}
