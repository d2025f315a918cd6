package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	Projection ProjectionConfig
	Share      ShareConfig
	Jobs       JobsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ProjectionConfig selects how scenario projections are produced. DemoMode
// picks the deterministic local projector at construction time; otherwise
// the reasoning service at BaseURL is called. The mode is fixed for the
// process lifetime rather than toggled through shared state.
type ProjectionConfig struct {
	DemoMode bool
	BaseURL  string
	APIKey   string
}

// ShareConfig holds scenario-share token settings. TokenKey is a base64
// fernet key; when empty, share records still persist but no share tokens
// are issued.
type ShareConfig struct {
	TokenKey string
}

// JobsConfig holds background job scheduling.
type JobsConfig struct {
	PruneSchedule  string // cron expression for the share-pruning job
	PruneAfterDays int    // how long rejected share records are kept
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8172"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/sage.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Projection: ProjectionConfig{
			DemoMode: getEnvBool("DEMO_MODE", true),
			BaseURL:  getEnv("PROJECTION_SERVICE_URL", ""),
			APIKey:   getEnv("PROJECTION_SERVICE_API_KEY", ""),
		},
		Share: ShareConfig{
			TokenKey: getEnv("SHARE_TOKEN_KEY", ""),
		},
		Jobs: JobsConfig{
			PruneSchedule:  getEnv("SHARE_PRUNE_SCHEDULE", "0 3 * * *"),
			PruneAfterDays: getEnvInt("SHARE_PRUNE_AFTER_DAYS", 30),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	if !config.Projection.DemoMode && config.Projection.BaseURL == "" {
		return nil, fmt.Errorf("PROJECTION_SERVICE_URL is required when DEMO_MODE is false")
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
