package cmd

import (
	"io"
	"log/slog"
)

// NewLogger builds the application logger. Any format other than LogFormatJSON
// produces human-readable text records.
func NewLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("service", "checkout")
}
