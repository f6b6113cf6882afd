package seidel

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything, and reports itself disabled so callers skip
// building the record in the first place.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used for solver diagnostics. The solver is
// silent by default. Pass nil to silence it again.
//
// Levels:
//   - [slog.LevelDebug]: one record per violated constraint and per line solve
//   - [slog.LevelInfo]: one record per finished solve
//
// Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}
