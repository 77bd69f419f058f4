// Package logging builds the structured logger shared by every component.
//
// The TUI owns the terminal while it runs, so diagnostics never go to
// stdout or stderr. They go to a log file when one is configured and are
// discarded otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
// An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Open creates a logger appending to the file at path. An empty path yields
// a discarding logger and a no-op closer.
func Open(path, levelName string) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return Discard(), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return New(f, level), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
