package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// DSN builds the lib/pq connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// Config is the gtpower service configuration, loaded from the environment.
type Config struct {
	HTTP struct {
		Addr string
	}
	Database DatabaseConfig
	Redis    struct {
		Addr     string
		Password string
		DB       int
	}
	CAS struct {
		// ServerURL is the CAS server base, e.g. "https://login.gatech.edu/cas".
		ServerURL string
		// ServiceURL is this API's externally visible /login URL, sent back
		// to CAS during ticket validation.
		ServiceURL string
	}
	Session struct {
		TTL time.Duration
	}
	// SensorTypesFile optionally points at a YAML file extending the meter
	// code table; empty means built-in defaults only.
	SensorTypesFile string
	Log             struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables with development
// defaults.
func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "gtfacilities")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.CAS.ServerURL = getEnv("CAS_SERVER_URL", "https://login.gatech.edu/cas")
	cfg.CAS.ServiceURL = getEnv("CAS_SERVICE_URL", "http://localhost:8080/login")

	ttlHours := parseInt(getEnv("SESSION_TTL_HOURS", "12"), 12)
	cfg.Session.TTL = time.Duration(ttlHours) * time.Hour

	cfg.SensorTypesFile = getEnv("SENSOR_TYPES_FILE", "")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
