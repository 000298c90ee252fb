// Package config loads compiler-wide settings from an optional TOML
// file, following the shape lookbusy1344/arm-emulator's config package
// uses for its emulator: a struct of grouped settings, a DefaultConfig
// constructor, and Load/LoadFrom helpers that fall back to the
// defaults when no file is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the settings that shape a single compilation run beyond
// what's passed on the command line.
type Config struct {
	// Codegen settings control the shape of the emitted assembly.
	Codegen struct {
		FrameSize int  `toml:"frame_size"` // bytes reserved by the prologue beneath s0
		Debug     bool `toml:"debug"`      // prepend a source-line comment to each statement
	} `toml:"codegen"`

	// Diagnostics settings control how lexer warnings surface.
	Diagnostics struct {
		WarningsFatal bool `toml:"warnings_fatal"` // treat lexer warnings as compilation failures
	} `toml:"diagnostics"`
}

// DefaultConfig returns the settings a compilation run uses when no
// config file is found.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Codegen.FrameSize = 128
	cfg.Codegen.Debug = false

	cfg.Diagnostics.WarningsFatal = false

	return cfg
}

// GetConfigPath returns the platform-specific default config file
// path, creating its directory if necessary.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "rv32c")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "rv32c")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file, or returns
// DefaultConfig if it does not exist.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the given path, or returns
// DefaultConfig if path does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the given path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user-supplied config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
