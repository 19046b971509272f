package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zona-batam/zona/internal/config"
)

func TestReadMissingConfig(t *testing.T) {
	loader := config.NewLoader(nil, t.TempDir())

	_, err := loader.Read()
	require.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestWriteDefaultsThenRead(t *testing.T) {
	dir := t.TempDir()
	loader := config.NewLoader(nil, dir)

	require.NoError(t, loader.Write(config.Default()))
	require.FileExists(t, filepath.Join(dir, "zona.yaml"))

	conf, err := config.NewLoader(nil, dir).Read()
	require.NoError(t, err)
	require.Equal(t, config.Default(), conf)
}

func TestReadFileValues(t *testing.T) {
	dir := t.TempDir()
	body := []byte("compact_width: 120\nfps: 0\nmouse_enabled: false\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zona.yaml"), body, 0o600))

	loader := config.NewLoader(nil, dir)
	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, 120, conf.CompactWidth)
	require.Equal(t, config.DefaultFPS, conf.FPS)
	require.False(t, conf.MouseEnabled)
	require.Equal(t, slog.LevelDebug, conf.Level())
	require.Equal(t, filepath.Join(dir, "zona.yaml"), loader.Path())
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	loader := config.NewLoader(nil, dir)
	require.NoError(t, loader.Write(config.Default()))

	t.Setenv("ZONA_COMPACT_WIDTH", "64")

	conf, err := config.NewLoader(nil, dir).Read()
	require.NoError(t, err)
	require.Equal(t, 64, conf.CompactWidth)
}

func TestLevelFallback(t *testing.T) {
	require.Equal(t, slog.LevelInfo, config.Config{LogLevel: "loud"}.Level())
	require.Equal(t, slog.LevelWarn, config.Config{LogLevel: "warn"}.Level())
}

func TestLoggerInitWritesToPath(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logPath := filepath.Join(t.TempDir(), config.DefaultLogName)
	closer, err := config.LoggerInit(logPath, slog.LevelDebug)
	require.NoError(t, err)

	slog.Debug("hello from test")
	require.NoError(t, closer.Close())

	body, errRead := os.ReadFile(logPath)
	require.NoError(t, errRead)
	require.Contains(t, string(body), "hello from test")
}

func TestLoaderDir(t *testing.T) {
	dir := t.TempDir()
	loader := config.NewLoader(nil, dir)
	require.Equal(t, dir, loader.Dir())

	require.NoError(t, loader.Write(config.Default()))
	_, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, dir, loader.Dir())
}
