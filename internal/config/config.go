package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"launchfs/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const AppName = "launchfs" // application name used for config directory

// Config holds user configuration for launchfs.
type Config struct {
	// FollowSymlinks is the default link policy for tree copies when the
	// command line does not say otherwise. Windows ignores it and always
	// dereferences.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// ShortcutDir is where created shortcuts land when no location is
	// given. Empty means the user's desktop directory.
	ShortcutDir string `yaml:"shortcut_dir"`

	Version  string `yaml:"version"`   // Track config version
	InitTime int64  `yaml:"init_time"` // Unix timestamp of first save
}

// Path returns the standard config file path for the current platform.
func Path() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load loads the config from the standard location. A missing config file is
// not an error; defaults are returned instead.
func Load() (*Config, error) {
	path := Path()
	if _, err := os.Stat(path); err != nil {
		logging.Debug("No config file, using defaults", "path", path)
		cfg := DefaultConfig()
		return &cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads config from a specific path.
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		FollowSymlinks: false,
		ShortcutDir:    "",
		Version:        "1.0",
		InitTime:       0, // Will be set during first save
	}
}

// Save writes the config to the standard location.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Set init time if this is the first save
	if c.InitTime == 0 {
		c.InitTime = time.Now().Unix()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file with restrictive permissions (600) for security
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
