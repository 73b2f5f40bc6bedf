package config

import (
	"fmt"
	"strconv"
	"time"

	"bookshop-catalog/internal/infrastructure/database"
)

// envParser records the first malformed variable so callers can read a
// batch of settings and check once.
type envParser struct {
	err error
}

func (p *envParser) int(key, def string) int {
	v, err := strconv.Atoi(getEnv(key, def))
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
	}
	return v
}

func (p *envParser) duration(key, def string) time.Duration {
	v, err := time.ParseDuration(getEnv(key, def))
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
	}
	return v
}

// LoadDatabaseConfig reads the PostgreSQL connection, pool and retry
// settings. Unlike Load, malformed values are errors, not defaults.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var p envParser

	cfg := &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              p.int("DB_PORT", "5432"),
		Username:          getEnv("DB_USER", "postgres"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "bookshop"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(p.int("DB_MAX_CONNECTIONS", "25")),
		MinConns:          int32(p.int("DB_MIN_CONNECTIONS", "5")),
		MaxConnLifetime:   p.duration("DB_MAX_CONN_LIFETIME", "5m"),
		MaxConnIdleTime:   p.duration("DB_MAX_CONN_IDLE_TIME", "1m"),
		HealthCheckPeriod: p.duration("DB_HEALTH_CHECK_PERIOD", "1m"),
		MaxRetries:        p.int("DB_MAX_RETRIES", "5"),
		RetryDelay:        p.duration("DB_RETRY_DELAY", "1s"),
		ConnectTimeout:    p.duration("DB_CONNECT_TIMEOUT", "10s"),
	}
	if p.err != nil {
		return nil, p.err
	}

	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}

	return cfg, nil
}
