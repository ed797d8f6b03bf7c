package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	// HTTP server configuration
	HTTP HTTPConfig

	// Public origin override; empty fields fall back to the request
	Public PublicConfig

	// Header state storage
	Store StoreConfig

	// NavFile is a YAML or TOML nav document; empty uses the built-in header
	NavFile string

	// WatchNavFile reloads NavFile when it changes on disk
	WatchNavFile bool

	// StrictURLs switches href generation to the well-formed URL variant
	StrictURLs bool

	// LogLevel is one of debug, info, warn, error
	LogLevel string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// PublicConfig is the origin browsers use to reach the suite
type PublicConfig struct {
	Protocol string
	Host     string
}

// StoreConfig selects and configures the header state backend
type StoreConfig struct {
	Backend         string // memory, sqlite or mongodb
	SQLitePath      string
	MongoDBURI      string
	MongoDatabase   string
	MongoCollection string
}

// Store backends
const (
	StoreMemory  = "memory"
	StoreSQLite  = "sqlite"
	StoreMongoDB = "mongodb"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Enabled: getEnvBool("SUITENAV_HTTP_ENABLED", true),
			Host:    getEnvString("SUITENAV_HTTP_HOST", "0.0.0.0"),
			Port:    getEnvInt("SUITENAV_HTTP_PORT", 11011),
		},
		Public: PublicConfig{
			Protocol: getEnvString("SUITENAV_PUBLIC_PROTOCOL", ""),
			Host:     getEnvString("SUITENAV_PUBLIC_HOST", ""),
		},
		Store: StoreConfig{
			Backend:         strings.ToLower(getEnvString("SUITENAV_STORE", StoreMemory)),
			SQLitePath:      getEnvString("SUITENAV_SQLITE_PATH", "./data/suitenav.db"),
			MongoDBURI:      getEnvString("SUITENAV_MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase:   getEnvString("SUITENAV_MONGODB_DATABASE", "suitenav"),
			MongoCollection: getEnvString("SUITENAV_MONGODB_COLLECTION", "header_states"),
		},
		NavFile:      getEnvString("SUITENAV_NAV_FILE", ""),
		WatchNavFile: getEnvBool("SUITENAV_WATCH_NAV_FILE", true),
		StrictURLs:   getEnvBool("SUITENAV_STRICT_URLS", false),
		LogLevel:     strings.ToLower(getEnvString("SUITENAV_LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory, StoreSQLite, StoreMongoDB:
	default:
		return fmt.Errorf("unknown store backend %q (want memory, sqlite or mongodb)", c.Store.Backend)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTP.Port)
	}
	return nil
}

// GetAddress returns the HTTP server address
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// Helper functions for environment variables
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
