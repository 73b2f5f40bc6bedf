package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"bookshop-catalog/pkg/logger"

	_ "modernc.org/sqlite"
)

// sqlitePragmas are applied by the driver to every new connection, so
// foreign keys hold on all pooled connections, not just the first.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

// SQLiteMaxOpenConns bounds the pool. Every in-flight request pins one
// connection for its whole lifetime, so this is also the number of
// concurrent catalog requests; the remaining headroom serves health
// pings and migrations. WAL lets the readers run beside the one writer.
const SQLiteMaxOpenConns = 32

func sqliteDSN(path string) string {
	q := url.Values{}
	for _, p := range sqlitePragmas {
		q.Add("_pragma", p)
	}
	return path + "?" + q.Encode()
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(SQLiteMaxOpenConns)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	logger.Info("sqlite opened", map[string]interface{}{"path": path})
	return db, nil
}
