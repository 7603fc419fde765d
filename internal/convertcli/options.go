// internal/convertcli/options.go
package convertcli

import (
	"github.com/spf13/pflag"

	"readprep/internal/clibase"
)

type Options struct {
	clibase.Common
}

func NewFlagSet(name string) *pflag.FlagSet {
	return clibase.NewFlagSet(name, "rewrite Illumina 1.3-1.7 quality scores as 1.8")
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

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
