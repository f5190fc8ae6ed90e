package overlay

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/overlay/font"
	"github.com/gogpu/overlay/render"
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

// SetLogger configures the logger for overlay and its sub-packages.
// By default, overlay produces no log output. Call SetLogger to enable it.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically
// and propagates it to the font and render sub-packages.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by overlay:
//   - [slog.LevelDebug]: internal diagnostics (atlas dimensions, run counts)
//   - [slog.LevelInfo]: important lifecycle events (backend selected, font loaded)
//   - [slog.LevelWarn]: non-fatal issues (glyph rasterization failures)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	overlay.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	font.SetLogger(l)
	render.SetLogger(l)
}

// Logger returns the current logger used by the overlay package.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
