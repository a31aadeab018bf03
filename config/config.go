package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`   // e.g. ":8080"
	AppEnv          string        `mapstructure:"APP_ENV"`          // "production" switches gin to release mode
	ReadTimeout     time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `mapstructure:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `mapstructure:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"` // debug, info, warn, error

	// Generation
	MaxPromptLength int  `mapstructure:"MAX_PROMPT_LENGTH"` // in runes, 0 disables the check
	MetricsEnabled  bool `mapstructure:"METRICS_ENABLED"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":    ":8080",
	"APP_ENV":           "development",
	"READ_TIMEOUT":      15 * time.Second,
	"WRITE_TIMEOUT":     30 * time.Second,
	"IDLE_TIMEOUT":      60 * time.Second,
	"SHUTDOWN_TIMEOUT":  10 * time.Second,
	"LOG_LEVEL":         "info",
	"MAX_PROMPT_LENGTH": 10000,
	"METRICS_ENABLED":   true,
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadEnvFile loads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func LoadEnvFile(logger *slog.Logger) {
	err := godotenv.Load()
	switch {
	case err == nil:
		logger.Info("loaded environment variables from .env file")
	case errors.Is(err, os.ErrNotExist):
		logger.Debug(".env file not found, relying on system environment variables")
	default:
		logger.Warn("error loading .env file", "error", err)
	}
}

// LoadConfig reads config.yaml from path, if present, and environment variables.
func LoadConfig(path string, logger *slog.Logger) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		logger.Debug("config file not found, relying on environment variables", "path", path)
	} else {
		logger.Info("using configuration file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if cfg.MaxPromptLength < 0 {
		return Config{}, fmt.Errorf("MAX_PROMPT_LENGTH must not be negative, got %d", cfg.MaxPromptLength)
	}
	if cfg.ServerAddress == "" {
		return Config{}, errors.New("SERVER_ADDRESS is required")
	}
	return cfg, nil
}
