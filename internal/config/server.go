// Package config provides server configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultPort is the port the HTTP API listens on when PORT is unset.
const DefaultPort = 8080

// ServerConfig holds the HTTP server settings. Prediction is pure arithmetic,
// so timeouts stay short.
type ServerConfig struct {
	Port         int           `validate:"gte=1,lte=65535"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
	IdleTimeout  time.Duration `validate:"gt=0"`
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default: 8080) and SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT,
// SERVER_IDLE_TIMEOUT as Go durations (defaults: 30s, 60s, 60s).
func NewServerConfig() (*ServerConfig, error) {
	config := &ServerConfig{
		Port:         getEnvInt("PORT", DefaultPort),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the server configuration against its struct tags.
func (c *ServerConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	return nil
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
