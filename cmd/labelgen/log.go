package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger without timestamps. INFO levels are
// dropped, so info records read like plain output.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			if a.Key == slog.LevelKey && a.Value.String() == "INFO" {
				return slog.Attr{}
			}

			return a
		},
	}))
}
