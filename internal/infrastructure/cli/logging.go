package cli

import (
	"io"
	"log/slog"
	"os"
)

// newLogger returns a text logger on stderr. Verbose mode enables debug output.
func newLogger(verbose bool) *slog.Logger {
	return newLoggerTo(os.Stderr, verbose)
}

func newLoggerTo(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
