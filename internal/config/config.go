package config

import (
	"os"
	"strconv"
	"time"

	"statusboard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Database DatabaseConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// UploadConfig holds file upload settings
type UploadConfig struct {
	// TempDir is where uploads are spooled before decoding. Files are
	// removed on every exit path.
	TempDir      string
	MaxSizeBytes int64
}

// DatabaseConfig holds the optional upload-audit database settings.
// An empty URL disables the audit log entirely.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8080"),
			GinMode:         getEnvOrDefault("GIN_MODE", "release"),
			ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Upload: UploadConfig{
			TempDir:      getEnvOrDefault("UPLOAD_TMP_DIR", os.TempDir()),
			MaxSizeBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 10<<20),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Upload.MaxSizeBytes <= 0 {
		return errors.ConfigInvalid("max upload size must be positive")
	}
	if config.Upload.TempDir == "" {
		return errors.ConfigInvalid("upload temp dir is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
