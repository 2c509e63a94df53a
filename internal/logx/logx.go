// Package logx configures the process-wide slog logger from the command
// line verbosity flags.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the minimum level that is printed. Shader compilation
// progress is logged at Info and only shows with -v.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the verbosity flags to a level:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - otherwise [slog.LevelWarn]
//
// The flags are checked in that order, so vv wins over q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a text logger writing to w that filters on UserLevel.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
}

// SetDefaultLogger installs a stderr logger at UserLevel as the slog default
// and returns it.
func SetDefaultLogger() *slog.Logger {
	l := NewLogger(os.Stderr)
	slog.SetDefault(l)
	return l
}
