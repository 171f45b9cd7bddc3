// Package logging builds the zerolog logger shared by commands and services.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w at the given level. format is "console"
// for human-readable lines or "json" for one JSON object per event.
func New(w io.Writer, level, format string) (*zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer
	switch format {
	case "", "console":
		out = consoleWriter(w)
	case "json":
		out = w
	default:
		return nil, fmt.Errorf("unknown log format %q (valid: console, json)", format)
	}

	logger := zerolog.New(out).With().Timestamp().Logger().Level(lvl)
	return &logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = true
		cw.TimeFormat = time.Kitchen
	})
}
