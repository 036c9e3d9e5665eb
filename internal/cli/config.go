package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/drafthaus/orthodraw/pkg/errors"
)

// Config holds the optional orthodraw.toml settings. Flags always win
// over config values; config values win over the built-in defaults.
type Config struct {
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig configures the render command and the TUI export.
type RenderConfig struct {
	Format string  `toml:"format"` // svg, json or png
	Theme  string  `toml:"theme"`  // paper or blueprint
	Width  float64 `toml:"width"`  // viewport width in pixels
	Height float64 `toml:"height"` // viewport height in pixels
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr              string `toml:"addr"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// DefaultConfig returns the built-in settings used when no config file
// exists.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Format: "svg",
			Theme:  "paper",
			Width:  800,
			Height: 600,
		},
		Server: ServerConfig{
			Addr:              ":8322",
			SessionTTLMinutes: 60,
		},
	}
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := errors.ValidateFormat(cfg.Render.Format); err != nil {
		return cfg, err
	}
	if err := errors.ValidateTheme(cfg.Render.Theme); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG location of orthodraw.toml
// (~/.config/orthodraw/orthodraw.toml), or empty when no home directory
// is resolvable.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "orthodraw.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "orthodraw.toml")
}
