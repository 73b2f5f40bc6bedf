package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"bookshop-catalog/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// DBConfig holds the PostgreSQL connection and pool settings.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	// Pool sizing and connection lifecycle
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry on startup
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB owns the pgx pool. The catalog talks to it through the
// database/sql bridge returned by SQLDB.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig

	sqlDB *sql.DB
}

func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
	}
}

func (db *PostgresDB) buildConnectionString() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(db.Config.Username, db.Config.Password),
		Host:   net.JoinHostPort(db.Config.Host, strconv.Itoa(db.Config.Port)),
		Path:   "/" + db.Config.DBName,
	}
	if db.Config.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {db.Config.SSLMode}}.Encode()
	}
	return u.String()
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// connectWithRetry backs off exponentially: RetryDelay, 2x, 4x, ...
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var lastErr error

	attempts := db.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		logger.Info("database connection attempt", map[string]interface{}{
			"attempt": attempt,
			"max":     attempts,
		})

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, config)
		if err == nil {
			err = pool.Ping(connectCtx)
			if err != nil {
				pool.Close()
			}
		}
		cancel()

		if err == nil {
			logger.Info("database connected", map[string]interface{}{"attempt": attempt})
			return pool, nil
		}
		lastErr = err

		logger.Warn("database connection attempt failed", map[string]interface{}{
			"attempt": attempt,
			"error":   err.Error(),
		})

		if attempt < attempts {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

func (db *PostgresDB) Connect(ctx context.Context) error {
	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool
	return nil
}

// SQLDB exposes the pool as a *sql.DB registered under the "pgx" driver.
// The same handle is returned on every call.
func (db *PostgresDB) SQLDB() (*sql.DB, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}
	if db.sqlDB == nil {
		db.sqlDB = stdlib.OpenDBFromPool(db.Pool)
	}
	return db.sqlDB, nil
}

// HealthCheck pings the pool and fails when it holds no connection at all.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}

	if db.Pool.Stat().TotalConns() == 0 {
		return fmt.Errorf("no active database connections")
	}
	return nil
}
