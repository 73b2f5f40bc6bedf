package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	pkgdb "bookshop-catalog/pkg/database"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// goose keeps its dialect, filesystem and logger in package globals.
var gooseMu sync.Mutex

const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func migrationsDir(d pkgdb.Dialect) string {
	switch d.Name() {
	case pkgdb.SQLite.Name():
		return path.Join("migrations", "sqlite")
	default:
		return path.Join("migrations", "postgres")
	}
}

// Migrate runs an embedded goose command against db.
func Migrate(ctx context.Context, db *sql.DB, d pkgdb.Dialect, command string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(d.GooseDialect()); err != nil {
		return fmt.Errorf("goose dialect %s: %w", d.GooseDialect(), err)
	}

	dir := migrationsDir(d)
	var err error
	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, db, dir)
	case MigrateDown:
		err = goose.DownContext(ctx, db, dir)
	case MigrateStatus:
		err = goose.StatusContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}
