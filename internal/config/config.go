package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/holocron/internal/logging"
	"github.com/papapumpkin/holocron/internal/roster"
	"github.com/papapumpkin/holocron/internal/swapi"
)

// Config holds all runtime configuration for a holocron session.
// Values are populated from .holocron.yaml, HOLOCRON_* env vars, and CLI flags.
type Config struct {
	BaseURL       string        `mapstructure:"base_url"`
	UserAgent     string        `mapstructure:"user_agent"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxFetches    int           `mapstructure:"max_fetches"`
	DefaultNames  []string      `mapstructure:"default_names"`
	RosterFile    string        `mapstructure:"roster_file"`
	WatchRoster   bool          `mapstructure:"watch_roster"`
	LogFile       string        `mapstructure:"log_file"`
	LogLevel      string        `mapstructure:"log_level"`
	TelemetryFile string        `mapstructure:"telemetry_file"`
	Verbose       bool          `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("base_url", swapi.DefaultBaseURL)
	viper.SetDefault("user_agent", "holocron/1.0")
	viper.SetDefault("timeout", 15*time.Second)
	viper.SetDefault("max_fetches", 0)
	viper.SetDefault("default_names", roster.DefaultNames)
	viper.SetDefault("roster_file", "")
	viper.SetDefault("watch_roster", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("telemetry_file", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no session could run with.
func (c Config) Validate() error {
	var errs []error
	if c.BaseURL == "" {
		errs = append(errs, errors.New("base_url must not be empty"))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if c.MaxFetches < 0 {
		errs = append(errs, fmt.Errorf("max_fetches must not be negative, got %d", c.MaxFetches))
	}
	if c.WatchRoster && c.RosterFile == "" {
		errs = append(errs, errors.New("watch_roster requires roster_file"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
