package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.False(t, Exists())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.LogFile = "/tmp/w.txt"
	cfg.General.Window = 7
	cfg.Appearance.Theme = "tokyo-night"
	cfg.TUI.AutoReload = true

	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "eatwatch"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general]\nlog_file = \"~/weight.txt\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "~/weight.txt", cfg.General.LogFile)
	assert.Equal(t, 10, cfg.General.Window)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestLoad_InvalidWindowFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "eatwatch"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general]\nwindow = 0\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.General.Window)
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "eatwatch"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general\n"), 0o600))

	cfg, err := Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig().General.Window, cfg.General.Window)
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/var/cache/test")
	assert.Equal(t, "/var/cache/test/eatwatch/eatwatch.log", LogFilePath(DefaultConfig()))

	cfg := DefaultConfig()
	cfg.Logging.File = "/tmp/x.log"
	assert.Equal(t, "/tmp/x.log", LogFilePath(cfg))
}
