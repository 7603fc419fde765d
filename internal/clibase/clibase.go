// internal/clibase/clibase.go

// Package clibase registers the flags every tool shares and builds the
// flag sets they hang their own options on.
package clibase

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"readprep/internal/version"
)

// Common holds the CLI fields shared by all tools.
type Common struct {
	Input   string
	Output  string
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with the shared usage
// header.
func NewFlagSet(name, synopsis string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%s: %s

Version: %s

Usage of %s:
`, name, synopsis, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Register wires the shared flags onto fs.
func Register(fs *pflag.FlagSet, c *Common) {
	fs.StringVarP(&c.Input, "input", "i", "-", "input file ('-' = stdin, .gz transparent)")
	fs.StringVarP(&c.Output, "output", "o", "-", "output file ('-' = stdout, .gz transparent)")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress non-essential messages")
	fs.BoolVarP(&c.Version, "version", "V", false, "print version and exit")
}

// AfterParse folds a single optional positional input file into
// Common and validates the leftovers.
func AfterParse(fs *pflag.FlagSet, c *Common) error {
	switch args := fs.Args(); {
	case len(args) == 0:
	case len(args) == 1 && c.Input == "-":
		c.Input = args[0]
	default:
		return errors.New("at most one positional input file is accepted")
	}
	return nil
}
