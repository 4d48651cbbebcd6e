package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Notification sinks
const (
	SinkLog    = "log"    // events are written to the structured log
	SinkOutbox = "outbox" // events are stored in the notifications table
)

// DefaultPageSize is used when paging.default_page_size is unset.
const DefaultPageSize = 10

// Config represents the portfolio configuration file.
type Config struct {
	Database      DatabaseConfig      `yaml:"database"`
	Locale        string              `yaml:"locale"`
	Log           LogConfig           `yaml:"log"`
	Metrics       MetricsConfig       `yaml:"metrics"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Paging        PagingConfig        `yaml:"paging"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path"` // ":memory:" for a throwaway database
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// MetricsConfig toggles operation metrics.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// NotificationsConfig selects where notifier events go.
type NotificationsConfig struct {
	Sink string `yaml:"sink"`
}

// PagingConfig sets list defaults.
type PagingConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
}

// Default returns the configuration used when no file exists.
func Default() (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Database:      DatabaseConfig{Path: filepath.Join(dir, "portfolio.db")},
		Locale:        "en",
		Log:           LogConfig{Level: "warn", Format: "text"},
		Notifications: NotificationsConfig{Sink: SinkOutbox},
		Paging:        PagingConfig{DefaultPageSize: DefaultPageSize},
	}, nil
}

// DefaultDir returns ~/.portfolio.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".portfolio"), nil
}

// DefaultConfigPath returns ~/.portfolio/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadConfig reads the YAML file at path on top of the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as YAML, creating the directory if needed.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects values the application cannot use.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}
	if c.Notifications.Sink != SinkLog && c.Notifications.Sink != SinkOutbox {
		return fmt.Errorf("unknown notifications.sink %q", c.Notifications.Sink)
	}
	if c.Paging.DefaultPageSize <= 0 {
		return fmt.Errorf("paging.default_page_size must be positive, got %d", c.Paging.DefaultPageSize)
	}
	return nil
}
