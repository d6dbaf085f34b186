// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const appName = "sqlcoach"

// Config holds all application configuration.
type Config struct {
	DataDir        string
	DatasetPath    string // practice database queried by the learner
	ProgressPath   string // JSON progress record
	EventsPath     string // activity log database
	LogPath        string
	LogMode        string // "dev" or "prod"
	MaxColumnWidth int    // result table cell truncation width
}

// Load reads configuration from a .env file in the working directory (if
// present) and from environment variables. Paths not set explicitly live
// under the data directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	dataDir := getEnv("SQLCOACH_DATA_DIR", "")
	if dataDir == "" {
		d, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = d
	}

	cfg := &Config{
		DataDir:        dataDir,
		DatasetPath:    getEnv("SQLCOACH_DB", ""),
		ProgressPath:   getEnv("SQLCOACH_PROGRESS", ""),
		EventsPath:     getEnv("SQLCOACH_EVENTS_DB", ""),
		LogPath:        getEnv("SQLCOACH_LOG", ""),
		LogMode:        getEnv("SQLCOACH_LOG_MODE", "dev"),
		MaxColumnWidth: getEnvInt("SQLCOACH_MAX_COL_WIDTH", 20),
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SetDataDir moves every path that was derived from the data directory.
// Paths that were set explicitly are kept.
func (c *Config) SetDataDir(dir string) {
	old := c.DataDir
	c.DataDir = dir
	for _, p := range []*string{&c.DatasetPath, &c.ProgressPath, &c.EventsPath, &c.LogPath} {
		if filepath.Dir(*p) == old {
			*p = ""
		}
	}
	c.fillDefaults()
}

func (c *Config) fillDefaults() {
	if c.DatasetPath == "" {
		c.DatasetPath = filepath.Join(c.DataDir, "google_ads.db")
	}
	if c.ProgressPath == "" {
		c.ProgressPath = filepath.Join(c.DataDir, "progress.json")
	}
	if c.EventsPath == "" {
		c.EventsPath = filepath.Join(c.DataDir, "activity.db")
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(c.DataDir, appName+".log")
	}
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("SQLCOACH_DATA_DIR cannot be empty")
	}
	if c.DatasetPath == "" {
		return fmt.Errorf("SQLCOACH_DB cannot be empty")
	}
	if c.ProgressPath == "" {
		return fmt.Errorf("SQLCOACH_PROGRESS cannot be empty")
	}
	if c.EventsPath == "" {
		return fmt.Errorf("SQLCOACH_EVENTS_DB cannot be empty")
	}
	switch c.LogMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("SQLCOACH_LOG_MODE must be dev or prod, got %q", c.LogMode)
	}
	if c.MaxColumnWidth <= 0 {
		return fmt.Errorf("SQLCOACH_MAX_COL_WIDTH must be > 0")
	}
	return nil
}

// EnsureDirs creates the parent directory of every configured file.
func (c *Config) EnsureDirs() error {
	for _, p := range []string{c.DatasetPath, c.ProgressPath, c.EventsPath, c.LogPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", p, err)
		}
	}
	return nil
}

// defaultDataDir resolves $XDG_DATA_HOME/sqlcoach, falling back to
// ~/.local/share/sqlcoach.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
