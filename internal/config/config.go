package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bookshop-catalog/pkg/database"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is populated from environment variables.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

// DatabaseConfig selects the store. Pool settings for PostgreSQL are read
// separately by LoadDatabaseConfig.
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	User        string
	Password    string
	Database    string
	SSLMode     string
	SQLitePath  string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string // unset defaults to localhost:6379, empty disables Redis
	Password string
	DB       int
}

type RateLimitConfig struct {
	Requests int // per window and client; 0 disables the limiter
	Window   time.Duration
}

// LoadEnvFiles reads .env.local then .env. Variables already set win, so
// .env.local overrides .env. Missing files are ignored.
func LoadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

func Load() (*Config, error) {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookshop Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:      driver,
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnvInt("DB_PORT", 5432),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Database:    getEnv("DB_NAME", "bookshop"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			SQLitePath:  getEnv("DB_SQLITE_PATH", "bookshop.db"),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", driver == DriverSQLite),
		},
		Redis: RedisConfig{
			Host:     getEnvOrUnset("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvInt("RATE_LIMIT_REQUESTS", 60),
			Window:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	if c.Database.Driver == DriverSQLite && c.Database.SQLitePath == "" {
		return fmt.Errorf("DB_SQLITE_PATH must be set when DB_DRIVER=sqlite")
	}

	if c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}

	if c.App.Environment == "production" && c.Database.Driver == DriverPostgres && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}

	return nil
}

// Dialect returns the SQL dialect of the configured driver.
func (d DatabaseConfig) Dialect() database.Dialect {
	if d.Driver == DriverSQLite {
		return database.SQLite
	}
	return database.Postgres
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvOrUnset returns defaultValue only when key is unset, so an
// explicitly empty value stays empty.
func getEnvOrUnset(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
