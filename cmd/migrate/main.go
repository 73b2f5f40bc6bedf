package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"bookshop-catalog/internal/config"
	"bookshop-catalog/internal/infrastructure/database"
	"bookshop-catalog/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	command := flag.String("command", database.MigrateUp, "Migration command: up, down, status")
	flag.Parse()

	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, closeDB, err := open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect to database")
	}
	defer closeDB()

	if err := database.Migrate(ctx, db, cfg.Database.Dialect(), *command); err != nil {
		log.Error().Err(err).Str("command", *command).Msg("migration failed")
		closeDB()
		os.Exit(1)
	}

	logger.Info("migration finished", map[string]interface{}{
		"command": *command,
		"driver":  cfg.Database.Driver,
	})
}

func open(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
	if cfg.Database.Driver == config.DriverSQLite {
		db, err := database.OpenSQLite(ctx, cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, nil, err
	}

	pg := database.NewPostgresDB(dbConfig)
	if err := pg.Connect(ctx); err != nil {
		return nil, nil, err
	}

	db, err := pg.SQLDB()
	if err != nil {
		_ = pg.Close()
		return nil, nil, err
	}
	return db, func() { _ = pg.Close() }, nil
}
