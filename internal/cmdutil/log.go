// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger builds the stderr console logger the tools report warnings
// and final stats through. --quiet keeps errors only.
func Logger(stderr io.Writer, quiet bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if quiet {
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).Level(lvl)
}
