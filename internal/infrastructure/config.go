package infrastructure

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// History backend selectors.
const (
	HistoryBackendFile   = "file"
	HistoryBackendMemory = "memory"
	HistoryBackendGCS    = "gcs"
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Model strategy settings. Both keys are optional; with neither set,
	// the fallback summarizer and entity rules are used.
	GeminiAPIKey string `json:"-"` // Don't expose in JSON
	GeminiModel  string `json:"gemini_model"`
	OpenAIAPIKey string `json:"-"` // Don't expose in JSON

	// History store settings
	HistoryBackend       string `json:"history_backend"` // file | memory | gcs
	HistoryFile          string `json:"history_file"`
	HistoryBucket        string `json:"history_bucket"`
	HistoryRetentionDays int    `json:"history_retention_days"` // 0 disables the sweep
	RetentionSchedule    string `json:"retention_schedule"`     // cron expression

	// Auth settings
	AuthToken string `json:"-"` // Don't expose in JSON
}

// Load reads configuration from environment variables and .env file.
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Host:                 getEnvOrDefault("HOST", "0.0.0.0"),
		GeminiAPIKey:         getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey:         getEnvOrDefault("OPENAI_API_KEY", ""),
		HistoryBackend:       getEnvOrDefault("HISTORY_BACKEND", HistoryBackendFile),
		HistoryFile:          getEnvOrDefault("HISTORY_FILE", "summary_history.json"),
		HistoryBucket:        getEnvOrDefault("HISTORY_BUCKET", "docdigest-history"),
		HistoryRetentionDays: getEnvOrDefaultInt("HISTORY_RETENTION_DAYS", 0),
		RetentionSchedule:    getEnvOrDefault("RETENTION_SCHEDULE", "0 3 * * *"),
		AuthToken:            getEnvOrDefault("AUTH_TOKEN", ""),
	}

	return config, config.validate()
}

// validate checks that configuration values are consistent.
func (c *Config) validate() error {
	switch c.HistoryBackend {
	case HistoryBackendFile, HistoryBackendMemory, HistoryBackendGCS:
	default:
		return &ConfigError{Field: "HISTORY_BACKEND", Message: "must be file, memory, or gcs"}
	}
	if c.HistoryBackend == HistoryBackendFile && c.HistoryFile == "" {
		return &ConfigError{Field: "HISTORY_FILE", Message: "history file path is required"}
	}
	if c.HistoryBackend == HistoryBackendGCS && c.HistoryBucket == "" {
		return &ConfigError{Field: "HISTORY_BUCKET", Message: "history bucket is required"}
	}
	if c.HistoryRetentionDays < 0 {
		return &ConfigError{Field: "HISTORY_RETENTION_DAYS", Message: "must not be negative"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set.
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
