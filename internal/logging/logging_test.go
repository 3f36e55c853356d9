package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnv, "")
	assert.False(t, DebugEnabled(), "empty value disables debug")

	t.Setenv(DebugEnv, "1")
	assert.True(t, DebugEnabled())
}

func TestLevel(t *testing.T) {
	t.Setenv(DebugEnv, "")
	assert.Equal(t, slog.LevelWarn, Level(false))
	assert.Equal(t, slog.LevelDebug, Level(true))

	t.Setenv(DebugEnv, "true")
	assert.Equal(t, slog.LevelDebug, Level(false))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet logger drops debug", verbose: false, wantDebug: false},
		{name: "verbose logger keeps debug", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DebugEnv, "")
			buf := &bytes.Buffer{}
			logger := New(buf, tt.verbose)

			logger.Debug("loaded tasks", "tasks", 3)
			logger.Warn("skipping corrupted task line", "line", 2)

			out := buf.String()
			assert.Contains(t, out, "level=WARN")
			assert.Contains(t, out, "line=2")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("tasks=3")))
		})
	}
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("dropped")
	})
}
