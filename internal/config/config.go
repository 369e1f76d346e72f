// Package config loads application configuration from environment variables
// and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Parser ParserConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig bounds what the parse endpoint accepts.
type UploadConfig struct {
	MaxSizeMB int `mapstructure:"max_size_mb"`
}

// MaxBytes returns the upload ceiling in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return int64(u.MaxSizeMB) << 20
}

// ParserConfig tunes the statement parsing engine.
type ParserConfig struct {
	MaxTransactions int `mapstructure:"max_transactions"`
	MinKeywordScore int `mapstructure:"min_keyword_score"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Load reads configuration from config.yaml (optional) and STMT_* environment
// variables, applying defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/statement-parser/")

	v.SetEnvPrefix("STMT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; environment variables and defaults apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("upload.max_size_mb", 10)

	v.SetDefault("parser.max_transactions", 20)
	v.SetDefault("parser.min_keyword_score", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func validate(config *Config) error {
	if config.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload max size must be positive, got: %d", config.Upload.MaxSizeMB)
	}
	if config.Parser.MaxTransactions <= 0 {
		return fmt.Errorf("transaction cap must be positive, got: %d", config.Parser.MaxTransactions)
	}
	if config.Log.Format != "console" && config.Log.Format != "json" {
		return fmt.Errorf("log format must be 'console' or 'json', got: %s", config.Log.Format)
	}
	return nil
}
