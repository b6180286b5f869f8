package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Repository backend names accepted in REPOSITORY_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logging configuration
	LogFormat string // "json" or "pretty"
	LogLevel  string // "debug", "info", "warn", "error"

	// Storage configuration
	RepositoryBackend string // "postgres" or "file"
	DataDir           string // base directory for the file backend

	// Behavior configuration
	SeedSampleInvoice    bool
	ClampNegativeAmounts bool
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 15)) * time.Second,

		LogFormat: getEnvString("LOG_FORMAT", "json"),
		LogLevel:  getEnvString("LOG_LEVEL", "info"),

		RepositoryBackend: strings.ToLower(getEnvString("REPOSITORY_BACKEND", BackendPostgres)),
		DataDir:           getEnvString("DATA_DIR", "data"),

		SeedSampleInvoice:    getEnvBool("SEED_SAMPLE_INVOICE", false),
		ClampNegativeAmounts: getEnvBool("CLAMP_NEGATIVE_AMOUNTS", false),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks configuration values and logs warnings for anything
// that will prevent the service from working.
func validateConfig(config *Config) {
	switch config.RepositoryBackend {
	case BackendPostgres:
		if os.Getenv("POSTGRES_DB_URL") == "" {
			log.Println("Warning: POSTGRES_DB_URL is not set. Database connections will fail.")
		}
	case BackendFile:
		// Nothing to validate; the data directory is created on demand.
	default:
		log.Printf("Warning: Unknown REPOSITORY_BACKEND %q, falling back to %q", config.RepositoryBackend, BackendPostgres)
		config.RepositoryBackend = BackendPostgres
	}

	if config.LogFormat != "json" && config.LogFormat != "pretty" {
		log.Printf("Warning: Unknown LOG_FORMAT %q, using \"json\"", config.LogFormat)
		config.LogFormat = "json"
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
