// Package logging builds the slog logger used across hachi.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv names the environment variable that turns on debug logging.
const DebugEnv = "HACHI_DEBUG"

// DebugEnabled returns true if debug mode is enabled via HACHI_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// Level returns Debug when verbose or HACHI_DEBUG is set, otherwise Warn.
func Level(verbose bool) slog.Level {
	if verbose || DebugEnabled() {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// New creates a text logger writing to w. A nil w writes to stderr.
func New(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose),
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
