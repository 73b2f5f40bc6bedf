package database

import (
	"context"
	"fmt"
	"time"

	"bookshop-catalog/pkg/logger"
)

func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close shuts the sql bridge and the pool. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	var err error
	if db.sqlDB != nil {
		err = db.sqlDB.Close()
		db.sqlDB = nil
	}

	db.Pool.Close()
	db.Pool = nil

	logger.Info("database pool closed", nil)
	return err
}

// PoolStats is the pool snapshot reported by the health endpoint.
type PoolStats struct {
	TotalConns         int32  `json:"total_conns"`
	IdleConns          int32  `json:"idle_conns"`
	AcquiredConns      int32  `json:"acquired_conns"`
	MaxConns           int32  `json:"max_conns"`
	AcquireCount       int64  `json:"acquire_count"`
	EmptyAcquireCount  int64  `json:"empty_acquire_count"`
	AvgAcquireDuration string `json:"avg_acquire_duration"`
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:         raw.TotalConns(),
		IdleConns:          raw.IdleConns(),
		AcquiredConns:      raw.AcquiredConns(),
		MaxConns:           raw.MaxConns(),
		AcquireCount:       raw.AcquireCount(),
		EmptyAcquireCount:  raw.EmptyAcquireCount(),
		AvgAcquireDuration: calculateAvgDuration(raw.AcquireDuration(), raw.AcquireCount()).String(),
	}, nil
}

func calculateAvgDuration(total time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}
