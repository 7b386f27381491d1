package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults read from an optional TOML file.
// Flags always take precedence over config values.
type Config struct {
	// Format is the default export format: dot, svg, or json.
	Format string `toml:"format"`
	// NoColor disables styled terminal output.
	NoColor bool `toml:"no_color"`
}

// defaultConfigPath returns the conventional config location,
// ~/.config/latent/config.toml, or "" if the home directory is unknown.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "latent", "config.toml")
}

// loadConfig reads a TOML config file. A missing file at the default
// location is not an error; an explicitly given path must exist.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := Config{Format: "svg"}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = "svg"
	}
	return cfg, nil
}
