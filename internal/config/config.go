package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Paths    PathConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// PathConfig holds file system paths for artifacts and datasets
type PathConfig struct {
	ModelDir   string
	DatasetDir string
}

// DatabaseConfig holds optional prediction-history database settings.
// The engine works without a database; history endpoints are only wired
// when URL is non-empty.
type DatabaseConfig struct {
	URL     string
	MaxConn int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Paths: PathConfig{
			ModelDir:   getEnvOrDefault("MODEL_DIR", "ml_models/trained"),
			DatasetDir: getEnvOrDefault("DATASET_DIR", "datasets"),
		},
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			MaxConn: getEnvIntOrDefault("DB_MAX_CONN", 10),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", cfg.Server.Port)
	}
	if cfg.Paths.ModelDir == "" {
		return fmt.Errorf("MODEL_DIR must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
