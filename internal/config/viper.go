// Package config provides Viper-based hierarchical configuration
// management: defaults, then an optional YAML file, then environment
// variables.
package config

import (
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Addr string `mapstructure:"addr" yaml:"addr"`
	} `mapstructure:"server" yaml:"server"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-tracker")
	v.AddConfigPath(".expense-tracker")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EXPENSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	// 5. The API key always comes from the conventional unprefixed variable.
	if err := v.BindEnv("ai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("database.path", "data/expenses.db")

	v.SetDefault("rules.file", "rules.yaml")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gpt-3.5-turbo")
	v.SetDefault("ai.timeout_seconds", 5)
}

func validateConfig(config *Config) error {
	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not a valid level", config.Log.Level)
	}

	switch strings.ToLower(config.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q must be 'text' or 'json'", config.Log.Format)
	}

	if config.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if config.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if config.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai.timeout_seconds must be positive, got %d", config.AI.TimeoutSeconds)
	}
	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("ai.enabled is true but no API key is set (OPENAI_API_KEY)")
	}
	return nil
}

// NewLogger builds the application logger from the logging section.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
