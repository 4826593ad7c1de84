// Package config loads user configuration from the XDG config directory.
//
// Configuration is optional: a missing file yields the built-in defaults.
// Command line flags always win over file values, so the file only sets
// the baseline for repeated use (preferred scheme, theme, output format).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/linecode"
	"github.com/EvapeGT/NetCom/pkg/render/waveform"
)

// appName is the application name used for directories.
const appName = "netcom"

// Config is the persisted user configuration.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Render   RenderConfig   `toml:"render"`
	Server   ServerConfig   `toml:"server"`
	Cache    CacheConfig    `toml:"cache"`
}

// DefaultsConfig sets the pipeline inputs used when flags are absent.
type DefaultsConfig struct {
	// Scheme is the line coding scheme.
	Scheme string `toml:"scheme"`

	// Polarity overrides the initial polarity of alternating schemes.
	// Zero keeps each scheme's own default.
	Polarity int `toml:"polarity"`
}

// RenderConfig sets the default output appearance.
type RenderConfig struct {
	Format      string  `toml:"format"`
	Theme       string  `toml:"theme"`
	Zoom        float64 `toml:"zoom"`
	CellsPerBit int     `toml:"cells_per_bit"`
	Grid        bool    `toml:"grid"`
	BitLabels   bool    `toml:"bit_labels"`
	RailLabels  bool    `toml:"rail_labels"`
}

// ServerConfig sets the defaults for the serve command.
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string `toml:"addr"`

	// RedisURL switches the server cache from files to Redis when set.
	RedisURL string `toml:"redis_url"`
}

// CacheConfig controls the local cache.
type CacheConfig struct {
	Disabled bool `toml:"disabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Scheme: string(linecode.NRZL),
		},
		Render: RenderConfig{
			Format:      "text",
			Theme:       string(waveform.ThemeClassic),
			Zoom:        40,
			CellsPerBit: 4,
			Grid:        true,
			BitLabels:   true,
			RailLabels:  true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Dir returns the configuration directory using the XDG standard
// (~/.config/netcom/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration file, layering it over the defaults.
// A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a configuration file from an explicit path, layering it
// over the defaults. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every set value. Unset values already carry defaults, so
// a valid file can set any subset of fields.
func (c *Config) Validate() error {
	if _, err := linecode.ParseScheme(c.Defaults.Scheme); err != nil {
		return err
	}
	if c.Defaults.Polarity != 0 {
		if err := errors.ValidatePolarity(c.Defaults.Polarity); err != nil {
			return err
		}
	}
	if _, err := waveform.ParseTheme(c.Render.Theme); err != nil {
		return err
	}
	switch c.Render.Format {
	case "svg", "png", "json", "text":
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid render format %q (must be one of: svg, png, json, text)", c.Render.Format)
	}
	if err := errors.ValidateZoom(c.Render.Zoom); err != nil {
		return err
	}
	if c.Render.CellsPerBit < 1 || c.Render.CellsPerBit > 16 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"cells_per_bit must be between 1 and 16, got %d", c.Render.CellsPerBit)
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server addr must not be empty")
	}
	return nil
}
