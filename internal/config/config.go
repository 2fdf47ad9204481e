package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ValidationConfig struct {
	// CollectAll reports every field error instead of stopping at the
	// first failing field.
	CollectAll bool `mapstructure:"collect_all"`
	// Clock freezes the validation clock to an RFC3339 instant.
	// Empty means wall clock.
	Clock string `mapstructure:"clock"`
}

type TraceConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Validation ValidationConfig `mapstructure:"validation"`
	Trace      TraceConfig      `mapstructure:"trace"`
}

// Now returns the configured validation clock, or the zero time when no
// clock override is set.
func (v ValidationConfig) Now() (time.Time, error) {
	if v.Clock == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v.Clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse validation clock: %w", err)
	}
	return t, nil
}

func Load() (*Config, error) {
	viper.SetConfigName("formval")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("validation.collect_all", false)
	viper.SetDefault("validation.clock", "")
	viper.SetDefault("trace.enabled", false)

	viper.AutomaticEnv()

	// The config file is optional for the CLI; defaults plus env cover
	// the common case.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
