// Package config reads service settings from viper, which merges command
// line flags, environment variables and defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDatabaseURL = "postgres://user:password@db:5432/almacen_db?sslmode=disable"
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
)

type Config struct {
	Host        string
	Port        int
	DatabaseURL string
	// RootPath is the prefix the service is mounted under, without a trailing slash.
	RootPath string

	LogLevel  string
	LogFormat string

	ReadRPS        int
	WriteRPS       int
	MaxBodyBytes   int64
	AllowedOrigins string
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", DefaultHost)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("DATABASE_URL", DefaultDatabaseURL)
	v.SetDefault("ROOT_PATH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("RATE_LIMIT_READ_RPS", 100)
	v.SetDefault("RATE_LIMIT_WRITE_RPS", 20)
	v.SetDefault("MAX_REQUEST_BODY_BYTES", 1048576)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Host:           v.GetString("HOST"),
		Port:           v.GetInt("PORT"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RootPath:       strings.TrimRight(v.GetString("ROOT_PATH"), "/"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		ReadRPS:        v.GetInt("RATE_LIMIT_READ_RPS"),
		WriteRPS:       v.GetInt("RATE_LIMIT_WRITE_RPS"),
		MaxBodyBytes:   v.GetInt64("MAX_REQUEST_BODY_BYTES"),
		AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.ReadRPS <= 0 || cfg.WriteRPS <= 0 {
		return nil, fmt.Errorf("rate limits must be positive")
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_BYTES must be positive")
	}

	return cfg, nil
}

// Addr is the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
