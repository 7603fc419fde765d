// internal/mergecli/options.go
package mergecli

import (
	"errors"

	"github.com/spf13/pflag"

	"readprep/internal/clibase"
)

type Options struct {
	clibase.Common

	Forward string
	Reverse string
	Tool    string
	DryRun  bool
}

func NewFlagSet(name string) *pflag.FlagSet {
	return clibase.NewFlagSet(name, "merge paired reads via the external usearch tool")
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.StringVarP(&opt.Forward, "forward", "f", "", "forward (/1) FASTQ file [*]")
	fs.StringVarP(&opt.Reverse, "reverse", "r", "", "reverse (/2) FASTQ file [*]")
	fs.StringVar(&opt.Tool, "tool", "usearch", "merger executable to invoke [usearch]")
	fs.BoolVar(&opt.DryRun, "dry-run", false, "print the merge command without running it")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if len(fs.Args()) > 0 {
		return opt, errors.New("positional arguments are not accepted")
	}

	switch {
	case opt.Forward == "" || opt.Reverse == "":
		return opt, errors.New("--forward and --reverse are both required")
	case opt.Output == "-":
		return opt, errors.New("--output must name a file (the merger writes it directly)")
	case opt.Tool == "":
		return opt, errors.New("--tool must not be empty")
	}
	return opt, nil
}
