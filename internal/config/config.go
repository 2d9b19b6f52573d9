// Package config provides XDG path helpers and TOML config parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// FileConfig represents the optional TOML configuration file.
type FileConfig struct {
	// Storage is a storage file path or PostgreSQL connection string,
	// same syntax as the --storage flag.
	Storage *string `toml:"storage"`
	Debug   *bool   `toml:"debug"`
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// ConfigDir returns the lifetrack config directory.
func ConfigDir() string {
	return filepath.Join(XDGConfigHome(), constants.AppName)
}

// DefaultStoragePath returns the default SQLite storage path.
func DefaultStoragePath() string {
	return filepath.Join(ConfigDir(), constants.AppName+".db")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads a TOML config from the given path. A missing file is not an error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
