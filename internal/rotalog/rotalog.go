// Package rotalog configures the process-wide zerolog logger: pretty
// console output in verbose mode, JSON otherwise, plus a file writer for
// the single-line fatal-error record the CLI leaves behind in LogDir.
package rotalog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Setup configures zerolog for one run. verbose selects a human-readable
// console writer at debug level; otherwise the logger writes structured
// JSON to stdout at info level, matching how a batch job's output gets
// piped into a log aggregator rather than read by a human at a terminal.
func Setup(verbose bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var writer io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if verbose {
		writer = zerolog.ConsoleWriter{Out: os.Stdout}
		level = zerolog.DebugLevel
	}

	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}

// OpenErrorLog opens (creating if needed) LogDir/error.log for append,
// the destination cmd/fillshifts writes one line to on a fatal exit path
// so an operator can find the last failure without scrolling through the
// full JSON log stream.
func OpenErrorLog(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(logDir, "error.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}
