package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	Database database.DatabaseConfig `json:"database"`

	// Logging configuration. Empty means the level follows the environment.
	LogLevel string `json:"log_level"`

	// Pagination configuration
	DefaultPageSize int `json:"default_page_size"`
	MaxPageSize     int `json:"max_page_size"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, Database: %s, LogLevel: %s, DefaultPageSize: %d, MaxPageSize: %d}",
		c.Port, c.Host, c.Environment, c.Database.String(), c.LogLevel, c.DefaultPageSize, c.MaxPageSize)
}

// DefaultPage returns the paging parameters used when a request does not set them
func (c *Config) DefaultPage() pagination.Params {
	return pagination.Params{PageSize: c.DefaultPageSize, PageNo: 1}
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It validates the port and, when set, the DATABASE_URL format
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	dbURL := GetEnvWithDefault("DATABASE_URL", "")
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format %s: %w", maskDatabaseURL(dbURL), err)
		}
	}

	config := &Config{
		Port:        port,
		Host:        GetEnvWithDefault("APP_HOST", "localhost"),
		Environment: GetEnvWithDefault("APP_ENV", "development"),
		Database: database.DatabaseConfig{
			Driver:               GetEnvWithDefault("DB_DRIVER", "sqlite"),
			URL:                  dbURL,
			Host:                 GetEnvWithDefault("DB_HOST", "localhost"),
			Port:                 GetEnvWithDefault("DB_PORT", "5432"),
			User:                 GetEnvWithDefault("DB_USER", "postgres"),
			Password:             GetEnvWithDefault("DB_PASSWORD", "postgres"),
			Name:                 GetEnvWithDefault("DB_NAME", "restaurant"),
			SSLMode:              GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:                 GetEnvWithDefault("DB_PATH", "restaurant.sqlite"),
			SlowQueryThresholdMs: GetEnvAsType("DB_SLOW_QUERY_MS", 200),
		},
		LogLevel:        GetEnvWithDefault("LOG_LEVEL", ""),
		DefaultPageSize: GetEnvAsType("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     GetEnvAsType("MAX_PAGE_SIZE", 100),
	}
	if config.DefaultPageSize <= 0 {
		return nil, fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", config.DefaultPageSize)
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
