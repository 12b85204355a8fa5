package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	API      APIConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Checkout CheckoutConfig
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port int
}

// SessionConfig holds session store configuration (Redis)
type SessionConfig struct {
	RedisURL string
	TTL      time.Duration
}

// CatalogConfig holds catalog document-store configuration
type CatalogConfig struct {
	MongoURI   string
	Database   string
	Collection string
	CacheTTL   time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// CheckoutConfig holds checkout handoff configuration
type CheckoutConfig struct {
	// WhatsAppNumber is the single shop number all orders and inquiries
	// are addressed to
	WhatsAppNumber string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	apiPort, err := strconv.Atoi(getEnv("API_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_PORT: %w", err)
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	catalogCacheTTL, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
	}

	return &Config{
		API: APIConfig{
			Port: apiPort,
		},
		Session: SessionConfig{
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
			TTL:      sessionTTL,
		},
		Catalog: CatalogConfig{
			MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DB", "parworld"),
			Collection: getEnv("MONGO_COLLECTION", "items"),
			CacheTTL:   catalogCacheTTL,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "parworld"),
			Password: getEnv("DB_PASSWORD", "parworld"),
			DBName:   getEnv("DB_NAME", "parworld"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Checkout: CheckoutConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "254722897985"),
		},
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
