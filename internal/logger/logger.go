// Package logger wraps log/slog with console and rotating file output.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelAlways is logged regardless of the configured level.
const LevelAlways = slog.Level(12)

var (
	logger *slog.Logger
	// logFile is the rotating file behind logger, if any
	logFile io.Closer
)

// Initialize installs the package logger, closing the log file of any
// previous one. Console output goes to stderr so generated records on stdout
// stay machine readable.
func Initialize(cfg Config) error {
	l, file, err := New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	prev := logFile
	logger, logFile = l, file
	if prev != nil {
		if err := prev.Close(); err != nil {
			return fmt.Errorf("logging: close previous log file: %w", err)
		}
	}
	return nil
}

// Close releases the log file opened by Initialize. Later calls to the
// logging functions are dropped until Initialize runs again.
func Close() error {
	file := logFile
	logger, logFile = nil, nil
	if file == nil {
		return nil
	}
	return file.Close()
}

// New builds a logger from cfg writing console output to console. The
// returned closer is the log file, or nil when file output is disabled.
func New(cfg Config, console io.Writer) (*slog.Logger, io.Closer, error) {
	level := parseLogLevel(cfg.Level)
	var handlers []slog.Handler
	var file io.Closer

	if cfg.ConsoleEnabled && console != nil {
		handlers = append(handlers, newHandler(console, cfg.ConsoleFormat, level))
	}

	if cfg.FileEnabled {
		if cfg.FilePath == "" {
			return nil, nil, fmt.Errorf("logging: file output enabled without a file path")
		}
		rotating := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
			Compress:   cfg.FileCompress,
		}
		handlers = append(handlers, newHandler(rotating, cfg.FileFormat, level))
		file = rotating
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.NewTextHandler(io.Discard, nil)), file, nil
	case 1:
		return slog.New(handlers[0]), file, nil
	default:
		return slog.New(newMultiHandler(handlers...)), file, nil
	}
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameAlways,
	}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// renameAlways prints LevelAlways as ALWAYS instead of ERROR+4.
func renameAlways(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelAlways {
			a.Value = slog.StringValue("ALWAYS")
		}
	}
	return a
}

// parseLogLevel converts a level name to slog.Level, defaulting to INFO
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...any) {
	Debug(fmt.Sprintf(format, args...))
}

// Info logs an info message
func Info(msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Infof logs a formatted info message
func Infof(format string, args ...any) {
	Info(fmt.Sprintf(format, args...))
}

// Warning logs a warning message
func Warning(msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Warningf logs a formatted warning message
func Warningf(format string, args ...any) {
	Warning(fmt.Sprintf(format, args...))
}

// Error logs an error message
func Error(msg string, args ...any) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}

// Errorf logs a formatted error message
func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}

// Always logs a message that bypasses level filtering, used for run
// summaries such as the seed a batch was generated with.
func Always(msg string, args ...any) {
	if logger != nil {
		logger.Log(context.Background(), LevelAlways, msg, args...)
	}
}

// Alwaysf logs a formatted message that bypasses level filtering
func Alwaysf(format string, args ...any) {
	Always(fmt.Sprintf(format, args...))
}

// multiHandler fans records out to several handlers
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
