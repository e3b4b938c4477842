// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human-readable logger writing to w, at debug level when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewJSON returns a structured logger for long-running processes.
func NewJSON(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
