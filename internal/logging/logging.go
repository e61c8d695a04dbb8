// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the TUI log file inside the cache directory.
const FileName = "ro-start.log"

// Options selects the handler.
type Options struct {
	Debug bool
	JSON  bool
	// Level applies when Debug is false.
	Level slog.Level
}

// New builds a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	level := opts.Level
	if opts.Debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// Console installs a logger on w (stderr for commands) as the default and
// returns it. Commands log warnings only unless debug is set, so stdout stays
// clean for pipes. structured selects JSON lines to match -o json|yaml.
func Console(w io.Writer, debug, structured bool) *slog.Logger {
	l := New(w, Options{Debug: debug, JSON: structured, Level: slog.LevelWarn})
	slog.SetDefault(l)
	return l
}

// Dir is the directory holding the log file.
func Dir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(cache, "ro-start"), nil
}

// File installs a logger appending to <dir>/ro-start.log as the default. The
// TUI uses it so log lines never draw over the alternate screen. The caller
// closes the returned file.
func File(dir string, debug bool) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(f, Options{Debug: debug, Level: slog.LevelInfo})
	slog.SetDefault(l)
	return l, f, nil
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
