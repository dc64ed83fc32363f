// Package config loads the settings of the dt command.
//
// Settings come, lowest precedence first, from built-in defaults, an
// optional config file, DT_* environment variables and command-line
// flags bound by the caller.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"go.dtime.dev/dt"
)

// EnvPrefix prefixes the environment variables, e.g. DT_DATE_LAYOUT.
const EnvPrefix = "DT"

// Keys.
const (
	KeyLayout     = "layout"
	KeyDateLayout = "date_layout"
	KeyTimeLayout = "time_layout"
	KeyUTC        = "utc"
	KeyLocation   = "location"
	KeyHistory    = "history"
)

// Config holds the dt command settings.
type Config struct {
	Layout     string `mapstructure:"layout"`
	DateLayout string `mapstructure:"date_layout"`
	TimeLayout string `mapstructure:"time_layout"`
	// UTC takes precedence over Location.
	UTC bool `mapstructure:"utc"`
	// Location is an IANA time zone name; empty means local time.
	Location string `mapstructure:"location"`
	// History is the REPL history file; empty disables history.
	History string `mapstructure:"history"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLayout, dt.DateTimeLayout)
	v.SetDefault(KeyDateLayout, dt.DateLayout)
	v.SetDefault(KeyTimeLayout, dt.DateTimeLayout)
	v.SetDefault(KeyUTC, false)
	v.SetDefault(KeyLocation, "")
	v.SetDefault(KeyHistory, "")
}

// New returns a Viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the optional config file into v and returns the merged
// settings. The file type follows its extension (toml, yaml or json).
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &c, nil
}

// Dt converts the settings to a dt configuration.
func (c *Config) Dt() (dt.Config, error) {
	loc := time.Local
	switch {
	case c.UTC:
		loc = time.UTC
	case c.Location != "":
		var err error
		if loc, err = time.LoadLocation(c.Location); err != nil {
			return dt.Config{}, errors.WithHint(
				errors.Wrapf(err, "invalid location %q", c.Location),
				"use an IANA time zone name such as Europe/Paris")
		}
	}
	dc := dt.DefaultConfig().In(loc)
	if c.Layout != "" {
		dc.DateTime.Layout = c.Layout
	}
	if c.DateLayout != "" {
		dc.Date.Layout = c.DateLayout
	}
	if c.TimeLayout != "" {
		dc.Time.Layout = c.TimeLayout
	}
	return dc, nil
}
