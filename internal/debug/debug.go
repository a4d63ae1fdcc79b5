package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables file logging.
const EnvVar = "SHIMMER_DEBUG"

var (
	logFile *os.File
	handler slog.Handler
	logger  = slog.New(forwardHandler{})
	mu      sync.Mutex
)

// Init initializes debug logging to the specified file path.
// If path is empty, logging is disabled and Logger discards every record.
// Loggers obtained earlier follow the new destination.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	closeLocked()
	if path == "" {
		handler = discardHandler{}
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	handler = newHandler(f)
	return nil
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}

// Logger returns the package logger. It always writes to the current
// destination, so it is safe to keep across Init, SetOutput and Close. On
// first use it honours SHIMMER_DEBUG; when the variable is unset every record
// is discarded so the terminal is never written to.
func Logger() *slog.Logger {
	return logger
}

// currentLocked returns the active handler, initializing it from the
// environment if needed. Caller must hold mu.
func currentLocked() slog.Handler {
	if handler == nil {
		if err := initLocked(os.Getenv(EnvVar)); err != nil {
			handler = discardHandler{}
		}
	}
	return handler
}

// SetOutput routes the package logger to w. Tests use it to capture records.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	handler = newHandler(w)
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	handler = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }
func (d discardHandler) WithGroup(string) slog.Handler { return d }

// forwardHandler resolves the package handler on every call and replays the
// attrs and groups bound through With and WithGroup onto it.
type forwardHandler struct {
	ops []func(slog.Handler) slog.Handler
}

func (f forwardHandler) resolveLocked() slog.Handler {
	h := currentLocked()
	for _, op := range f.ops {
		h = op(h)
	}
	return h
}

func (f forwardHandler) Enabled(ctx context.Context, level slog.Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return f.resolveLocked().Enabled(ctx, level)
}

func (f forwardHandler) Handle(ctx context.Context, r slog.Record) error {
	mu.Lock()
	defer mu.Unlock()
	return f.resolveLocked().Handle(ctx, r)
}

func (f forwardHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.with(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f forwardHandler) WithGroup(name string) slog.Handler {
	return f.with(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f forwardHandler) with(op func(slog.Handler) slog.Handler) forwardHandler {
	ops := make([]func(slog.Handler) slog.Handler, len(f.ops), len(f.ops)+1)
	copy(ops, f.ops)
	return forwardHandler{ops: append(ops, op)}
}
