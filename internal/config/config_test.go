package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SQLCOACH_DATA_DIR", "SQLCOACH_DB", "SQLCOACH_PROGRESS", "SQLCOACH_EVENTS_DB",
		"SQLCOACH_LOG", "SQLCOACH_LOG_MODE", "SQLCOACH_MAX_COL_WIDTH",
	} {
		t.Setenv(k, "")
	}
	// Run from an empty directory so no stray .env is picked up.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	cfg, err := Load()
	require.NoError(t, err)

	dir := filepath.Join(xdg, "sqlcoach")
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "google_ads.db"), cfg.DatasetPath)
	assert.Equal(t, filepath.Join(dir, "progress.json"), cfg.ProgressPath)
	assert.Equal(t, filepath.Join(dir, "activity.db"), cfg.EventsPath)
	assert.Equal(t, filepath.Join(dir, "sqlcoach.log"), cfg.LogPath)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, 20, cfg.MaxColumnWidth)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("SQLCOACH_DATA_DIR", dir)
	t.Setenv("SQLCOACH_DB", "/tmp/custom.db")
	t.Setenv("SQLCOACH_LOG_MODE", "prod")
	t.Setenv("SQLCOACH_MAX_COL_WIDTH", "32")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DatasetPath)
	assert.Equal(t, filepath.Join(dir, "progress.json"), cfg.ProgressPath)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, 32, cfg.MaxColumnWidth)
}

func TestLoad_InvalidLogMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("SQLCOACH_DATA_DIR", t.TempDir())
	t.Setenv("SQLCOACH_LOG_MODE", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestSetDataDir_KeepsExplicitPaths(t *testing.T) {
	cfg := &Config{DataDir: "/a", DatasetPath: "/custom/ads.db", LogMode: "dev", MaxColumnWidth: 20}
	cfg.fillDefaults()

	cfg.SetDataDir("/b")
	assert.Equal(t, "/custom/ads.db", cfg.DatasetPath)
	assert.Equal(t, filepath.Join("/b", "progress.json"), cfg.ProgressPath)
	assert.Equal(t, filepath.Join("/b", "activity.db"), cfg.EventsPath)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{DataDir: "/d", LogMode: "dev", MaxColumnWidth: 20}
		c.fillDefaults()
		return c
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.MaxColumnWidth = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.ProgressPath = ""
	assert.Error(t, c.Validate())
}

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{DataDir: filepath.Join(root, "x", "y"), LogMode: "dev", MaxColumnWidth: 20}
	cfg.fillDefaults()

	require.NoError(t, cfg.EnsureDirs())
	assert.DirExists(t, cfg.DataDir)
}
