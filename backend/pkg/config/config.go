package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Auth
	JWTSecret string

	// Storage
	DataDir string

	// Assistant
	AssistantURL    string
	AssistantModel  string
	AssistantAPIKey string

	// Demo data
	SeedDemoData bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		DataDir:         getEnv("DATA_DIR", "data"),
		AssistantURL:    getEnv("ASSISTANT_URL", "http://localhost:4000"),
		AssistantModel:  getEnv("ASSISTANT_MODEL", "gemini-2.0-flash"),
		AssistantAPIKey: getEnv("ASSISTANT_API_KEY", ""),
		SeedDemoData:    getEnvBool("SEED_DEMO_DATA", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.JWTSecret == "" {
		// Development fallback so a bare checkout boots
		c.JWTSecret = "pulse-dev-secret"
	}
	if c.AssistantURL == "" {
		return fmt.Errorf("ASSISTANT_URL is required")
	}
	if c.AssistantModel == "" {
		return fmt.Errorf("ASSISTANT_MODEL is required")
	}
	// Assistant API key is optional for development
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
