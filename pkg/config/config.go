package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mintfolio/pkg/models"
)

// Config carries the knobs of one pipeline run. Values come from, in
// ascending precedence: defaults, the config file, MINTFOLIO_* environment
// variables, command-line flags.
type Config struct {
	Year       int
	GroupField string
	RulesPath  string
	Top        int
	Debug      bool
}

// Build loads configuration, binding any matching flags so CLI values win.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("year", time.Now().Year())
	v.SetDefault("group_field", models.FieldDescription)
	v.SetDefault("top", 10)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("mintfolio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MINTFOLIO")
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []struct{ config, flag string }{
			{"year", "year"},
			{"group_field", "group-field"},
			{"rules", "rules"},
			{"top", "top"},
			{"debug", "debug"},
		} {
			if f := flags.Lookup(key.flag); f != nil {
				if err := v.BindPFlag(key.config, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", key.flag, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing discovered file is fine; a broken or explicitly named
		// one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Year:       v.GetInt("year"),
		GroupField: v.GetString("group_field"),
		RulesPath:  v.GetString("rules"),
		Top:        v.GetInt("top"),
		Debug:      v.GetBool("debug"),
	}
	if cfg.Year <= 0 {
		return nil, fmt.Errorf("invalid target year %d", cfg.Year)
	}
	return cfg, nil
}
