package cmd

import (
	"io"
	"log/slog"
)

// newLogger builds the logger behind --log-level and --log-format. Levels
// are the slog names, in any case; anything unrecognized logs at info.
// Format "json" selects JSON records and everything else plain text.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var minLevel slog.Level
	if err := minLevel.UnmarshalText([]byte(level)); err != nil {
		minLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: minLevel}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
