package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the defaults used by every command. Command flags override them.
type Config struct {
	Format string    `mapstructure:"format"`
	Source string    `mapstructure:"source"`
	Log    LogConfig `mapstructure:"log"`
}

// LogConfig diagnostic logging settings
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

var (
	formats   = []string{"text", "json", "yaml"}
	sources   = []string{"tracks", "waypoints", "all"}
	logLevels = []string{"debug", "info", "warn", "error", "disabled"}
)

// Load reads configuration from an optional fctools.yaml file and FCTOOLS_* environment
// variables (FCTOOLS_LOG_LEVEL -> log.level), on top of defaults.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("format", "text")
	v.SetDefault("source", "tracks")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.console", true)

	v.SetConfigName("fctools")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/fctools")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("FCTOOLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every setting holds a supported value
func (c *Config) Validate() error {
	var errs []string

	if !oneOf(c.Format, formats) {
		errs = append(errs, fmt.Sprintf("format must be one of %s, got '%s'", strings.Join(formats, ", "), c.Format))
	}
	if !oneOf(c.Source, sources) {
		errs = append(errs, fmt.Sprintf("source must be one of %s, got '%s'", strings.Join(sources, ", "), c.Source))
	}
	if !oneOf(c.Log.Level, logLevels) {
		errs = append(errs, fmt.Sprintf("log.level must be one of %s, got '%s'", strings.Join(logLevels, ", "), c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func oneOf(s string, values []string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}
