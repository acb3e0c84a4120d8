// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xrframe

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while the frame loop is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for xrframe and all its sub-packages.
// By default, xrframe produces no log output.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by xrframe:
//   - [slog.LevelDebug]: per-frame diagnostics (display times, image indices)
//   - [slog.LevelInfo]: lifecycle events (instance, system, session state changes)
//   - [slog.LevelWarn]: non-fatal conditions (events lost, foreign session
//     events, render callback errors, tracking loss)
//   - [slog.LevelError]: runtime call failures surfaced to the caller
//
// Example:
//
//	xrframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by xrframe.
// Sub-packages call this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
