// internal/trimcli/options.go
package trimcli

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"readprep/internal/clibase"
)

type Options struct {
	clibase.Common

	Primer        string
	MaxMismatches int
	Window        int
	KeepUnmatched bool
	StatsJSON     bool
}

func NewFlagSet(name string) *pflag.FlagSet {
	return clibase.NewFlagSet(name, "strip amplification primers from FASTQ reads")
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.StringVarP(&opt.Primer, "primer", "p", "", "primer sequence expected near the read start [*]")
	fs.IntVarP(&opt.MaxMismatches, "max-mismatches", "d", 1, "max primer mismatches tolerated [1]")
	fs.IntVarP(&opt.Window, "window", "w", 0, "leading-region search window (0 = primer length + mismatches + 1)")
	fs.BoolVar(&opt.KeepUnmatched, "keep-unmatched", false, "pass unmatched reads through unmodified instead of dropping them")
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

	opt.Primer = strings.ToUpper(strings.TrimSpace(opt.Primer))
	switch {
	case opt.Primer == "":
		return opt, errors.New("--primer is required")
	case opt.MaxMismatches < 0:
		return opt, errors.New("--max-mismatches must be >= 0")
	case opt.Window < 0:
		return opt, errors.New("--window must be >= 0")
	}
	return opt, nil
}
