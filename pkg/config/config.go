// Package config loads the optional clayls.toml server configuration.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"gitlab.com/tozd/go/errors"
)

// Config controls the ambient behavior of the server process. Dialect
// constants (marker, mapping, helper catalog) are compile-time and never
// configurable.
type Config struct {
	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFile receives logs instead of stderr when set. Stderr is unusable
	// for humans once the editor owns the stdio pipes.
	LogFile string `toml:"log_file"`
	// Pretty switches the log output to the console writer format.
	Pretty bool `toml:"pretty"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load reads path. A missing file yields the defaults; a malformed file is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
