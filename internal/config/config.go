package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-vectors/store"
)

const (
	ConfigDirName  = ".vectorctl"
	ConfigFileName = "config.yaml"

	// EnvConfigPath overrides the default config file location
	EnvConfigPath = "VECTORCTL_CONFIG"
)

// Config represents the vectorctl configuration
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects where named collections live
type StoreConfig struct {
	Backend store.Backend `yaml:"backend"` // file, sqlite, memory
	Path    string        `yaml:"path"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: store.BackendFile,
			Path:    filepath.Join("~", ConfigDirName, "collections"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $VECTORCTL_CONFIG or ~/.vectorctl/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName, ConfigFileName), nil
}

// Load reads the configuration at path on top of Default.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, cfg.finish()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) finish() error {
	path, err := expandHome(c.Store.Path)
	if err != nil {
		return err
	}
	c.Store.Path = path
	return c.Validate()
}

// Validate checks that every field holds a supported value
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case store.BackendFile, store.BackendSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("invalid config: store.path is required for backend %q", c.Store.Backend)
		}
	case store.BackendMemory:
	default:
		return fmt.Errorf("invalid config: unknown store.backend %q", c.Store.Backend)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid config: unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

// expandHome replaces a leading "~" with the user's home directory
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
