// Package config loads lrusim settings from flags and LRUSIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.expect.digital/recency/internal/logging"
)

const envPrefix = "LRUSIM"

var ErrInvalidCapacity = errors.New("capacity must be positive")

// Config represents the lrusim configuration.
type Config struct {
	Capacity int            `mapstructure:"capacity"`
	Log      logging.Config `mapstructure:"log"`
}

// Default returns the configuration used when no flag or variable is set.
func Default() Config {
	return Config{
		Capacity: 3,
		Log:      logging.DefaultConfig(),
	}
}

// Load merges defaults, environment variables and the flags that were set,
// in increasing priority. Flags are bound by name: capacity, log-level,
// log-format.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("capacity", defaults.Capacity)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.timeformat", defaults.Log.TimeFormat)

	bindings := map[string]string{
		"capacity":   "capacity",
		"log.level":  "log-level",
		"log.format": "log-format",
	}

	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Capacity <= 0 {
		return Config{}, fmt.Errorf("capacity %d: %w", cfg.Capacity, ErrInvalidCapacity)
	}

	return cfg, nil
}
