// Package config provides configuration management for agenda.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	agendaerrors "github.com/mfield/agenda/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
	// DataDirName is the agenda data directory under the user home.
	DataDirName = ".agenda"
)

// StorageBackend selects how the task collection is persisted.
type StorageBackend string

const (
	// BackendSQLite stores the collection in a SQLite kv table (default).
	BackendSQLite StorageBackend = "sqlite"
	// BackendFile stores the collection as an atomic JSON file.
	BackendFile StorageBackend = "file"
)

// Config represents the agenda configuration.
type Config struct {
	// Version is the config file version.
	Version int `yaml:"version"`

	// Backend selects the storage backend (sqlite or file).
	Backend StorageBackend `yaml:"backend"`

	// DataDir is where the store lives. Empty means ~/.agenda.
	DataDir string `yaml:"data_dir,omitempty"`

	// TrendWindowDays is the dashboard trend window length.
	TrendWindowDays int `yaml:"trend_window_days"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version:         1,
		Backend:         BackendSQLite,
		TrendWindowDays: 14,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile:
	default:
		return agendaerrors.ErrConfigInvalid("backend",
			fmt.Sprintf("unknown backend %q (valid: sqlite, file)", c.Backend))
	}
	if c.TrendWindowDays < 1 {
		return agendaerrors.ErrConfigInvalid("trend_window_days", "must be at least 1")
	}
	return nil
}

// ResolveDataDir returns the configured data directory, defaulting to
// ~/.agenda when unset.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DataDirName), nil
}

// Load reads the configuration from the given directory, returning defaults
// if no config file exists.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, agendaerrors.ErrConfigInvalid("config.yaml", "not valid YAML").WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given directory.
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
