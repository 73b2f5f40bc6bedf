// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"bookshop-catalog/internal/entity"
	"bookshop-catalog/internal/infrastructure/database"
	pkgdb "bookshop-catalog/pkg/database"

	"github.com/stretchr/testify/require"
)

// NewStore returns a migrated SQLite store in a temp dir, closed when the
// test ends.
func NewStore(t *testing.T) *pkgdb.Store {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, db, pkgdb.SQLite, database.MigrateUp))

	store := pkgdb.NewStore(db, pkgdb.SQLite)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewSession acquires a session released when the test ends.
func NewSession(t *testing.T, store *pkgdb.Store) *pkgdb.Session {
	t.Helper()

	session, err := store.Acquire(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Release() })
	return session
}

// SeedCategory inserts a category with plain SQL, bypassing repositories.
func SeedCategory(t *testing.T, store *pkgdb.Store, name string) *entity.Category {
	t.Helper()

	res, err := store.DB().Exec(`INSERT INTO categories (name) VALUES (?)`, name)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	c := &entity.Category{Name: name}
	c.SetID(id)
	return c
}

// SeedBook inserts a book with plain SQL, bypassing repositories.
func SeedBook(t *testing.T, store *pkgdb.Store, name, author, description string, categoryID int64) *entity.Book {
	t.Helper()

	published := time.Date(2001, time.July, 29, 0, 0, 0, 0, time.UTC)
	res, err := store.DB().Exec(
		`INSERT INTO books (name, author, description, publish_date, category_id) VALUES (?, ?, ?, ?, ?)`,
		name, author, description, published, categoryID,
	)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	b := &entity.Book{
		Name:        name,
		Author:      author,
		Description: description,
		PublishDate: published,
		CategoryID:  categoryID,
	}
	b.SetID(id)
	return b
}
