// Package config resolves where stl-forge keeps its generated files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the settings loadable from a TOML file.
type Config struct {
	Dir     string `toml:"dir"`
	Verbose bool   `toml:"verbose"`
}

// Load reads the TOML config at path. A missing file is not an error; the
// zero Config is returned so flag and env resolution can proceed.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".stl-forge", "config.toml")
}

// DefaultDir returns the default data directory.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".stl-forge", "models")
}
