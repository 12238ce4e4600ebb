package database

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend identifies which database engine a Config targets.
type Backend string

// Supported backends.
const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Config holds database configuration
type Config struct {
	Backend Backend

	// Postgres settings
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// SQLite settings
	Path string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadConfigFromEnv loads database configuration from environment variables.
// DATABASE_URL selects the backend by prefix: postgresql://... targets
// Postgres, sqlite:///path (or an unset URL) targets SQLite. Individual
// DB_* variables override URL components for Postgres.
func LoadConfigFromEnv() (Config, error) {
	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "5"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "1"))

	cfg := Config{
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	url := os.Getenv("DATABASE_URL")
	switch {
	case strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://"):
		port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.Backend = BackendPostgres
		cfg.Host = getEnvOrDefault("DB_HOST", "localhost")
		cfg.Port = port
		cfg.User = getEnvOrDefault("DB_USER", "exegete")
		cfg.Password = os.Getenv("DB_PASSWORD")
		cfg.Database = getEnvOrDefault("DB_NAME", "exegete")
		cfg.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
	case strings.HasPrefix(url, "sqlite://"):
		cfg.Backend = BackendSQLite
		cfg.Path = strings.TrimPrefix(url, "sqlite://")
	case url == "":
		cfg.Backend = BackendSQLite
		cfg.Path = getEnvOrDefault("DB_PATH", "exegete.db")
	default:
		return Config{}, fmt.Errorf("unrecognized DATABASE_URL scheme: %q", url)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
