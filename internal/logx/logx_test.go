package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		vv, v, q bool
		want     slog.Level
	}{
		{true, false, false, slog.LevelDebug},
		{true, false, true, slog.LevelDebug},
		{false, true, true, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{false, true, false, slog.LevelInfo},
		{false, false, false, slog.LevelWarn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromFlags(tt.vv, tt.v, tt.q), "vv=%v v=%v q=%v", tt.vv, tt.v, tt.q)
	}
}

func TestLevelFromFlags_VerboseShowsProgress(t *testing.T) {
	quiet := LevelFromFlags(false, false, false)
	verbose := LevelFromFlags(false, true, false)
	assert.NotEqual(t, quiet, verbose)
	assert.Greater(t, quiet, slog.LevelInfo)
	assert.LessOrEqual(t, verbose, slog.LevelInfo)
}

func TestNewLogger_FiltersOnUserLevel(t *testing.T) {
	old := UserLevel
	t.Cleanup(func() { UserLevel = old })

	UserLevel = slog.LevelWarn
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Info("compiling vertex shader")
	l.Warn("texture missing")

	out := buf.String()
	assert.NotContains(t, out, "compiling vertex shader")
	assert.Contains(t, out, "texture missing")
}
