// Package config loads the runtime settings a plugin module reads once per
// process: logging, metrics and render defaults.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. OFXGO_LOG_LEVEL.
const EnvPrefix = "OFXGO"

// EnvConfigFile names the environment variable holding the config file path.
const EnvConfigFile = EnvPrefix + "_CONFIG"

// Config is the module configuration.
type Config struct {
	Log     Log     `mapstructure:"log"`
	Metrics Metrics `mapstructure:"metrics"`
	Render  Render  `mapstructure:"render"`
}

// Log configures the debug logger.
type Log struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error, disabled
	File   string `mapstructure:"file"`   // optional log file, appended to
	Format string `mapstructure:"format"` // console or json
}

// Metrics configures action metrics.
type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

// Render holds render defaults.
type Render struct {
	// Tiles is the default tile count for parallel renders; 0 means the
	// host CPU count.
	Tiles int `mapstructure:"tiles"`
}

var (
	levels  = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	formats = []string{"console", "json"}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Metrics: Metrics{Enabled: true},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("render.tiles", d.Render.Tiles)
}

// Load reads the configuration. path names a YAML file; when empty the path
// in OFXGO_CONFIG is used, and when that is empty too only defaults and
// environment overrides apply. A path that does not exist is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, oops.In("config").With("path", path).Wrapf(err, "read config file")
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, oops.In("config").With("path", path).Wrapf(err, "stat config file")
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, oops.In("config").Wrapf(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if !contains(levels, strings.ToLower(c.Log.Level)) {
		return oops.In("config").
			With("level", c.Log.Level).
			Errorf("invalid log level %q (must be one of %s)", c.Log.Level, strings.Join(levels, ", "))
	}
	if !contains(formats, strings.ToLower(c.Log.Format)) {
		return oops.In("config").
			With("format", c.Log.Format).
			Errorf("invalid log format %q (must be one of %s)", c.Log.Format, strings.Join(formats, ", "))
	}
	if c.Render.Tiles < 0 {
		return oops.In("config").
			With("tiles", c.Render.Tiles).
			Errorf("render tiles must not be negative")
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
