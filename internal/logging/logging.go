// Package logging builds the structured diagnostics logger. User-facing
// command output stays on stdout via fmt; this logger writes to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const FieldComponent = "component"

const (
	ComponentApp     = "app"
	ComponentLoader  = "loader"
	ComponentWatcher = "watcher"
	ComponentHTTP    = "http"
)

// ParseLevel maps a config level name to a slog level.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported log level %q (supported: debug|info|warn|error)", value)
	}
}

// New returns a text logger writing to w, or to stderr when w is nil.
func New(level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup builds the logger for the given level name and installs it as the
// slog default.
func Setup(levelName string) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := New(level, nil)
	slog.SetDefault(logger)
	return logger, nil
}

// Component returns logger tagged with a component name. A nil logger
// falls back to slog.Default().
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(FieldComponent, name)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
