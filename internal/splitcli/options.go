// internal/splitcli/options.go
package splitcli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"readprep/internal/clibase"
)

const (
	FormatFastq = "fastq"
	FormatFasta = "fasta"
)

type Options struct {
	clibase.Common

	Format string
	N      int
}

func NewFlagSet(name string) *pflag.FlagSet {
	return clibase.NewFlagSet(name, "split a read file into N round-robin chunks")
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.StringVarP(&opt.Format, "format", "f", FormatFastq, "input format: fastq | fasta [fastq]")
	fs.IntVarP(&opt.N, "chunks", "n", 0, "number of chunk files to produce [*]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if err := clibase.AfterParse(fs, &opt.Common); err != nil {
		return opt, err
	}

	switch {
	case opt.Format != FormatFastq && opt.Format != FormatFasta:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	case opt.N < 1:
		return opt, errors.New("--chunks must be >= 1")
	case opt.Input == "-":
		return opt, errors.New("splitting needs a named input file (chunk names derive from it)")
	}
	return opt, nil
}
