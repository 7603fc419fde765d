// internal/demuxcli/options.go
package demuxcli

import (
	"errors"

	"github.com/spf13/pflag"

	"readprep/internal/clibase"
)

type Options struct {
	clibase.Common

	BarcodeFile   string
	MaxMismatches int
	StatsJSON     bool
}

func NewFlagSet(name string) *pflag.FlagSet {
	return clibase.NewFlagSet(name, "assign FASTQ reads to samples by barcode")
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.StringVarP(&opt.BarcodeFile, "barcodes", "b", "", "tab-separated sample<TAB>barcode mapping file [*]")
	fs.IntVarP(&opt.MaxMismatches, "max-mismatches", "d", 1, "max barcode mismatches tolerated [1]")
	fs.BoolVar(&opt.StatsJSON, "stats-json", false, "report final counters to stderr as JSON")

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
	case opt.BarcodeFile == "":
		return opt, errors.New("--barcodes is required")
	case opt.MaxMismatches < 0:
		return opt, errors.New("--max-mismatches must be >= 0")
	}
	return opt, nil
}
