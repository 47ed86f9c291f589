// Package log builds the command line tool's slog logger.
//
// Library packages take a *slog.Logger and discard output by default. The
// tool writes text records to stderr at the configured level; --verbose
// lowers the level to debug so skipped elements become visible.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel parses a level name: debug, info, warn (or warning) or error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

// New creates a text logger writing to w. verbose overrides level with
// debug.
func New(w io.Writer, level slog.Level, verbose bool) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
