// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds application configuration values loaded from file or
// environment variables.
type Config struct {
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	StoragePath    string `mapstructure:"STORAGE_PATH"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	RedisPrefix    string `mapstructure:"REDIS_PREFIX"`
	AdminEmail     string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword  string `mapstructure:"ADMIN_PASSWORD"`
	TokenSecret    string `mapstructure:"TOKEN_SECRET"`
	AuthDelayMS    int    `mapstructure:"AUTH_DELAY_MS"`
	PageSize       int    `mapstructure:"PAGE_SIZE"`
	Env            string `mapstructure:"APP_ENV"`
}

// AuthDelay returns the simulated auth latency as a duration.
func (c *Config) AuthDelay() time.Duration {
	return time.Duration(c.AuthDelayMS) * time.Millisecond
}

// LoadConfig loads application configuration from file and environment
// variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	viper.SetDefault("STORAGE_BACKEND", BackendFile)
	viper.SetDefault("STORAGE_PATH", "inkwell.json")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("REDIS_PREFIX", "inkwell")
	viper.SetDefault("ADMIN_EMAIL", "admin@blog.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("TOKEN_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("AUTH_DELAY_MS", 800)
	viper.SetDefault("PAGE_SIZE", 6)
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and sane.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if (c.StorageBackend == BackendFile || c.StorageBackend == BackendSQLite) && c.StoragePath == "" {
		return errors.New("STORAGE_PATH is required for file and sqlite backends")
	}
	if c.StorageBackend == BackendRedis && c.RedisURL == "" {
		return errors.New("REDIS_URL is required for the redis backend")
	}
	if c.PageSize <= 0 {
		return errors.New("PAGE_SIZE must be positive")
	}
	if c.AuthDelayMS < 0 {
		return errors.New("AUTH_DELAY_MS must not be negative")
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if c.TokenSecret == "" {
		return errors.New("TOKEN_SECRET is required")
	}

	if c.Env == "production" || c.Env == "prod" {
		if c.TokenSecret == "your-secret-key-change-in-production" {
			return errors.New("TOKEN_SECRET must be changed from the default value in production")
		}
		if c.AdminPassword == "admin123" {
			log.Println("WARNING: ADMIN_PASSWORD is the well-known default. Change it before exposing this instance.")
		}
	}

	return nil
}
