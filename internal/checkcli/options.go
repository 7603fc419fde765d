// internal/checkcli/options.go
package checkcli

import (
	"github.com/spf13/pflag"

	"readprep/internal/clibase"
)

type Options struct {
	clibase.Common

	// MaxRecords caps how many records are inspected; 0 reads the
	// whole file.
	MaxRecords int
}

func NewFlagSet(name string) *pflag.FlagSet {
	return clibase.NewFlagSet(name, "classify a FASTQ file's quality-score encoding")
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.IntVarP(&opt.MaxRecords, "max-records", "n", 0, "inspect at most N records (0 = all)")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if err := clibase.AfterParse(fs, &opt.Common); err != nil {
		return opt, err
	}
	return opt, nil
}
