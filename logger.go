package lively

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for lively and all its sub-packages.
// By default, lively produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// The render package seeds the GPU internals with the current logger when a
// renderer is constructed, so call SetLogger before render.New for GPU
// diagnostics to be captured.
//
// Log levels used by lively:
//   - [slog.LevelDebug]: internal diagnostics (pipeline state, uniform writes,
//     input event streams)
//   - [slog.LevelInfo]: important lifecycle events (GPU adapter selected,
//     pointer device opened)
//   - [slog.LevelWarn]: non-fatal issues (pointer device unavailable,
//     resource release errors)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	lively.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	lively.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by lively.
// Sub-packages (render, pointer, host) call this to share the same logger
// configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
