package rrect

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so the passes
// skip building attributes when logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is shared by every Renderer. Renderers on different
// goroutines may log while SetLogger swaps it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by every Renderer. rrect is silent by
// default; nil restores the silent logger. It is safe for concurrent use.
//
// Records emitted by rrect:
//   - [slog.LevelDebug] "rrect: shadow": width, corner (corner buffer side),
//     blur and refine (widths of the two box blur passes)
//   - [slog.LevelWarn] "rrect: mask stack full, mask dropped": count
//   - [slog.LevelWarn] "rrect: pattern image is empty": bounds
//   - [slog.LevelWarn] "rrect: pattern symbol has no extent": symbol, width, height
//
// To see how a shadow width splits into blur passes:
//
//	rrect.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//	d := rrect.NewRectDesc()
//	d.ShadowWidth = 15
//	r.DrawRect(coords, clip, &d)
//	// level=DEBUG msg="rrect: shadow" width=15 corner=15 blur=7 refine=8
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
