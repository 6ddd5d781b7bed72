// Package logging builds the diagnostic logger shared by every hook.
// Diagnostics always go to stderr; when a log file is configured they are
// mirrored to a lumberjack-rotated file as well.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/michael-freling/commit-hooks/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger and owns the rotated file, if any.
type Logger struct {
	*slog.Logger
	file *lumberjack.Logger
}

// New creates a Logger writing to stderr and, if cfg.File is set, to a
// rotated log file.
func New(stderr io.Writer, cfg config.LogConfig) *Logger {
	var out io.Writer = stderr
	var file *lumberjack.Logger
	if cfg.File != "" {
		file = newRotatedFile(cfg)
		if file != nil {
			out = io.MultiWriter(stderr, file)
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})
	return &Logger{
		Logger: slog.New(handler),
		file:   file,
	}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Close flushes and closes the rotated file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newRotatedFile(cfg config.LogConfig) *lumberjack.Logger {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
		return nil
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
}
