package logging

import (
	"io"
	"log/slog"
)

var level = new(slog.LevelVar)

// Init installs a text logger on w as the slog default. Debug enables
// debug-level output.
func Init(w io.Writer, debug bool) {
	SetDebug(debug)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// SetDebug switches the level of the installed logger.
func SetDebug(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}
