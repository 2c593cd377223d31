package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Catalog sources.
const (
	CatalogSourceStatic   = "static"
	CatalogSourceFile     = "file"
	CatalogSourceS3       = "s3"
	CatalogSourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Assistant AssistantConfig
	Session   SessionConfig
	Catalog   CatalogConfig
	S3        S3Config
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AssistantConfig holds styling assistant configuration.
type AssistantConfig struct {
	Enabled        bool
	APIKey         string
	Model          string
	Temperature    float64
	TimeoutSeconds int
}

// SessionConfig holds session lifecycle configuration.
type SessionConfig struct {
	IdleTimeoutMinutes   int
	SweepIntervalSeconds int
	SizeErrorClearMillis int
}

// CatalogConfig selects where the product catalog is loaded from.
type CatalogConfig struct {
	Source string
	Files  []string
}

// S3Config holds AWS S3 configuration for catalog files.
type S3Config struct {
	Bucket string
	Region string
	Prefix string // Path prefix within bucket (e.g., "catalog/")
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: loadDatabase(),
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Assistant: AssistantConfig{
			Enabled:        getEnvAsBool("ASSISTANT_ENABLED", true),
			APIKey:         getEnv("ASSISTANT_API_KEY", ""),
			Model:          getEnv("ASSISTANT_MODEL", "gemini-3-flash-preview"),
			Temperature:    getEnvAsFloat("ASSISTANT_TEMPERATURE", 0.7),
			TimeoutSeconds: getEnvAsInt("ASSISTANT_TIMEOUT_SECONDS", 30),
		},
		Session: SessionConfig{
			IdleTimeoutMinutes:   getEnvAsInt("SESSION_IDLE_TIMEOUT_MINUTES", 60),
			SweepIntervalSeconds: getEnvAsInt("SESSION_SWEEP_INTERVAL_SECONDS", 60),
			SizeErrorClearMillis: getEnvAsInt("SIZE_ERROR_CLEAR_MS", 2000),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", CatalogSourceStatic),
			Files:  getEnvAsList("CATALOG_FILES", nil),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "us-east-1"),
			Prefix: getEnv("S3_PREFIX", "catalog/"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadDatabase loads only the database settings, for tools that do not run
// the storefront.
func LoadDatabase() (*DatabaseConfig, error) {
	cfg := loadDatabase()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnvAsInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", ""),
		Database:        getEnv("DB_NAME", "brandbear"),
		MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 10),
		MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
		MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Assistant.Enabled {
		if c.Assistant.APIKey == "" {
			return fmt.Errorf("assistant API key is required when the assistant is enabled")
		}
		if c.Assistant.Model == "" {
			return fmt.Errorf("assistant model is required when the assistant is enabled")
		}
	}

	if c.Assistant.Temperature < 0 || c.Assistant.Temperature > 2 {
		return fmt.Errorf("assistant temperature must be between 0 and 2")
	}

	if c.Assistant.TimeoutSeconds < 1 {
		return fmt.Errorf("assistant timeout must be at least 1 second")
	}

	if c.Session.IdleTimeoutMinutes < 1 {
		return fmt.Errorf("session idle timeout must be at least 1 minute")
	}

	if c.Session.SweepIntervalSeconds < 1 {
		return fmt.Errorf("session sweep interval must be at least 1 second")
	}

	if c.Session.SizeErrorClearMillis < 1 {
		return fmt.Errorf("size error clear delay must be at least 1 millisecond")
	}

	switch c.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourceFile:
		if len(c.Catalog.Files) == 0 {
			return fmt.Errorf("catalog files are required for the file catalog source")
		}
	case CatalogSourceS3:
		if len(c.Catalog.Files) == 0 {
			return fmt.Errorf("catalog files are required for the s3 catalog source")
		}
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required for the s3 catalog source")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required for the s3 catalog source")
		}
	case CatalogSourcePostgres:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be static, file, s3, or postgres)", c.Catalog.Source)
	}

	return nil
}

// Validate validates the database settings.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Timeout returns the per-request completion timeout.
func (c *AssistantConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// IdleTimeout returns how long an untouched session lives.
func (c *SessionConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// SweepInterval returns how often idle sessions are swept.
func (c *SessionConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// SizeErrorDelay returns how long the size-error flag stays raised.
func (c *SessionConfig) SizeErrorDelay() time.Duration {
	return time.Duration(c.SizeErrorClearMillis) * time.Millisecond
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsList retrieves a comma-separated environment variable, dropping
// blank entries, or returns a default value.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
