package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	return h, buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(lg *slog.Logger)
		want string
	}{
		{
			name: "info is plain",
			log:  func(lg *slog.Logger) { lg.Info("plain message") },
			want: "plain message\n",
		},
		{
			name: "warn carries the warning icon",
			log:  func(lg *slog.Logger) { lg.Warn("careful") },
			want: "! careful\n",
		},
		{
			name: "error carries the cross icon",
			log:  func(lg *slog.Logger) { lg.Error("broken") },
			want: "✗ broken\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)
			tt.log(slog.New(h))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	h, buf := newTestHandler(t)
	slog.New(h).Info("building", "asset", "app/Cargo.toml", "profile", "release")

	assert.Equal(t, "building asset=app/Cargo.toml profile=release\n", buf.String())
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	h, buf := newTestHandler(t)
	slog.New(h).With("crate", "my-crate").Info("probing toolchain")

	assert.Equal(t, "probing toolchain crate=my-crate\n", buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	h, buf := newTestHandler(t)
	slog.New(h).WithGroup("build").Info("done", "elapsed", "2s")

	assert.Equal(t, "done build.elapsed=2s\n", buf.String())
}

func TestPrettyHandler_LevelFiltering(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	require.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, h.Enabled(context.Background(), slog.LevelWarn))

	slog.New(h).Info("suppressed")
	assert.Empty(t, buf.String())
}

func TestPrettyHandler_NilOptions(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil)

	require.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}
