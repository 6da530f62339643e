// Package logging builds the process logger from the application config.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/GoSim-25-26J-441/todo-tracker/config"
)

// New returns a logger writing to stdout. Production uses JSON lines,
// every other environment uses the human readable text format.
func New(app config.AppConfig) *slog.Logger {
	return NewWithWriter(os.Stdout, app)
}

func NewWithWriter(w io.Writer, app config.AppConfig) *slog.Logger {
	lvl, err := app.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if app.IsProduction() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(
		slog.String("env", app.Environment),
		slog.String("version", app.Version),
	)
}

// Discard is a logger that drops everything. Handy for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
