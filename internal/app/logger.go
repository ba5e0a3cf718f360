package app

import (
	"io"
	"log/slog"
)

// newLogger builds the run's logger. level is one of the names cli.Parse
// accepts; anything else, including the empty string, logs at info.
// Output is text unless format is "json".
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
