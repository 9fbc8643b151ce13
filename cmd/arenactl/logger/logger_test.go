package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscards(t *testing.T) {
	closer, err := Init(Options{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	require.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInitWritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	now := func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }

	closer, err := Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug, Now: now})
	require.NoError(t, err)
	Debug("region acquired", "words", 8192)
	require.NoError(t, closer.Close())
	t.Cleanup(func() { _, _ = Init(Options{}) })

	data, err := os.ReadFile(filepath.Join(dir, "arenactl-2026-03-14.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"region acquired"`)
	require.Contains(t, string(data), `"words":8192`)
}

func TestInitRemovesExpiredLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "arenactl-2020-01-01.log")
	recent := filepath.Join(dir, "arenactl-2026-03-10.log")
	unrelated := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, recent, unrelated} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	now := func() time.Time { return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) }
	closer, err := Init(Options{Enabled: true, LogDir: dir, Now: now})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	t.Cleanup(func() { _, _ = Init(Options{}) })

	require.NoFileExists(t, old)
	require.FileExists(t, recent)
	require.FileExists(t, unrelated)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}
