package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host      string
	Port      string
	StaticDir string
}

// DatabaseConfig holds the Postgres connection and pool settings.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxIdleMinutes int
	ConnMaxLifeMinutes int
}

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

// Load reads configuration from environment variables, falling back to
// development defaults for anything unset.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Host:      getEnvOrDefault("SERVER_HOST", "127.0.0.1"),
			Port:      getEnvOrDefault("SERVER_PORT", "8080"),
			StaticDir: getEnvOrDefault("STATIC_DIR", "public"),
		},
		Database: DatabaseConfig{
			URL:                getEnvOrDefault("DATABASE_URL", ""),
			Host:               getEnvOrDefault("DB_HOST", "localhost"),
			Port:               getEnvOrDefault("DB_PORT", "5432"),
			User:               getEnvOrDefault("DB_USER", "postgres"),
			Password:           getEnvOrDefault("DB_PASSWORD", "postgres"),
			Name:               getEnvOrDefault("DB_NAME", "blog_db"),
			SSLMode:            getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:       getIntEnvOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getIntEnvOrDefault("DB_MAX_IDLE_CONNS", 10),
			ConnMaxIdleMinutes: getIntEnvOrDefault("DB_CONN_MAX_IDLE_MINUTES", 5),
			ConnMaxLifeMinutes: getIntEnvOrDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30),
		},
	}
}

// Addr returns the host:port pair the server listens on.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// ConnString returns the lib/pq connection string. DATABASE_URL, when set,
// takes precedence over the discrete DB_* variables.
func (d DatabaseConfig) ConnString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("Invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}

	return value
}
