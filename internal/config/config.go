package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Store backends
const (
	BackendSQLite = "sqlite" // SQLite database file (default)
	BackendFile   = "file"   // JSON file
	BackendMemory = "memory" // process memory, lost on exit
	BackendNone   = "none"   // no persistent medium
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Config represents the academia configuration
type Config struct {
	Version      string `json:"version"`
	StoreBackend string `json:"store_backend,omitempty" env:"ACADEMIA_STORE_BACKEND"`
	StorePath    string `json:"store_path,omitempty" env:"ACADEMIA_STORE_PATH"` // empty = default per backend
	LogMode      string `json:"log_mode,omitempty" env:"ACADEMIA_LOG_MODE"`     // "", "debug" or "prod"
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:      CurrentVersion,
		StoreBackend: BackendSQLite,
	}
}

// LoadConfig reads .academia/config.json from the specified directory.
// Returns an error wrapping fs.ErrNotExist if there is no config file.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".academia", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".academia")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .academia dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Resolve loads the config for dir, falling back to defaults when there is
// no config file, then applies ACADEMIA_* environment overrides.
func Resolve(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.StoreBackend == "" {
		cfg.StoreBackend = BackendSQLite
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the backend is known.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendSQLite, BackendFile, BackendMemory, BackendNone:
		return nil
	}
	return fmt.Errorf("unknown store backend %q (expected sqlite, file, memory or none)", c.StoreBackend)
}

// ResolveStorePath returns the configured store path, or the default for the
// backend under ~/.academia. Backends without a location return "".
func (c *Config) ResolveStorePath() (string, error) {
	if c.StoreBackend == BackendMemory || c.StoreBackend == BackendNone {
		return "", nil
	}
	if c.StorePath != "" {
		return c.StorePath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if c.StoreBackend == BackendFile {
		return filepath.Join(home, ".academia", "store.json"), nil
	}
	return filepath.Join(home, ".academia", "academia.db"), nil
}
