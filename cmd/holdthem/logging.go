package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// setupLogger writes console output by default and JSON when format is "json".
func setupLogger(w io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if format == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(w).
			Level(level).
			With().
			Timestamp().
			Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
