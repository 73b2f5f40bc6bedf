package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	pkgdb "bookshop-catalog/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_PingWhileSessionsPinned(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	store := pkgdb.NewStore(db, pkgdb.SQLite)
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, SQLiteMaxOpenConns, db.Stats().MaxOpenConnections)

	for i := 0; i < 8; i++ {
		session, err := store.Acquire(ctx)
		require.NoError(t, err)
		t.Cleanup(func() { _ = session.Release() })
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	assert.NoError(t, store.Ping(pingCtx))
}

func TestOpenSQLite_ForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for i := 0; i < 3; i++ {
		conn, err := db.Conn(ctx)
		require.NoError(t, err)
		defer conn.Close()

		var on int
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&on))
		assert.Equal(t, 1, on)
	}
}
