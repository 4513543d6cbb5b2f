package logging

import (
	"io"
	"log/slog"
)

// Init installs the default logger. Only warnings are shown unless debug is set.
func Init(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
