// Package file loads the gpeople configuration from a TOML file in the
// user's config directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Storage backends for the credentials store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the on-disk configuration of the gpeople CLI.
type Config struct {
	OAuth struct {
		ClientID     string `toml:"client_id"`
		ClientSecret string `toml:"client_secret"`
		// Port for the local consent redirect listener; 0 picks a
		// free port.
		Port int `toml:"port"`
	} `toml:"oauth"`

	Credentials struct {
		// Backend selects the credentials store: "file" or "sqlite".
		Backend string `toml:"backend"`
		// Path overrides the default store location.
		Path string `toml:"path"`
	} `toml:"credentials"`

	RateLimit struct {
		// ReadCalls/WriteCalls per window; zero selects the API
		// defaults.
		ReadCalls     int `toml:"read_calls"`
		WriteCalls    int `toml:"write_calls"`
		WindowSeconds int `toml:"window_seconds"`
	} `toml:"rate_limit"`

	Paging struct {
		// MaxAttempts bounds retries per page; zero selects the
		// default.
		MaxAttempts int `toml:"max_attempts"`
	} `toml:"paging"`
}

// DefaultPath returns the default config file location,
// ~/.gpeople/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".gpeople", "config.toml"), nil
}

// Load reads the configuration from the given path. An empty path uses
// the default location; a missing file yields the zero config so every
// value can come from flags or defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Credentials.Backend != "" &&
		cfg.Credentials.Backend != BackendFile &&
		cfg.Credentials.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown credentials backend %q", cfg.Credentials.Backend)
	}
	return &cfg, nil
}

// Save writes the configuration back to the given path, creating the
// parent directory if missing.
func Save(path string, cfg *Config) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
