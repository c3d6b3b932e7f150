// Package logging builds the application logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/fourword/internal/config"
)

// New builds a slog.Logger for cfg. Output "stderr" writes to fallback,
// "stdout" to os.Stdout, anything else is a file path opened for append.
//
// The returned close func must be called on shutdown; it closes the log file
// when one was opened and is a no-op otherwise.
func New(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	w, closeFn, err := openOutput(cfg.Output, fallback)
	if err != nil {
		return nil, nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		closeFn()
		return nil, nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	return slog.New(handler), closeFn, nil
}

// Discard returns a logger that drops every event.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openOutput(output string, fallback io.Writer) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch output {
	case "", "stderr":
		if fallback == nil {
			fallback = os.Stderr
		}
		return fallback, noop, nil
	case "stdout":
		return os.Stdout, noop, nil
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
