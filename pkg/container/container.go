package container

import (
	"context"
	"fmt"
	"time"

	"bookshop-catalog/internal/config"
	bookHandler "bookshop-catalog/internal/domains/book/handler"
	categoryHandler "bookshop-catalog/internal/domains/category/handler"
	infraCache "bookshop-catalog/internal/infrastructure/cache"
	"bookshop-catalog/internal/infrastructure/database"
	"bookshop-catalog/pkg/cache"
	pkgdb "bookshop-catalog/pkg/database"
	"bookshop-catalog/pkg/logger"
)

// Container holds the process-wide dependencies. Repositories and services
// are not here: they live in a per-request Scope bound to one store session.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config   *config.Config
	Postgres *database.PostgresDB // nil when running on SQLite
	Store    *pkgdb.Store
	Redis    *infraCache.RedisClient // nil when REDIS_HOST is empty
	Cache    cache.Cache

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	BookHandler     *bookHandler.Handler
	CategoryHandler *categoryHandler.CategoryHandler
}

// NewContainer builds the dependency graph in order:
// config, store (+ migrations), cache, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewContainerWithConfig(ctx, cfg)
}

func NewContainerWithConfig(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initCache(ctx)
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"env":    cfg.App.Environment,
		"driver": cfg.Database.Driver,
		"redis":  c.Redis != nil,
	})
	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	dialect := c.Config.Database.Dialect()

	switch c.Config.Database.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, c.Config.Database.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}
		c.Store = pkgdb.NewStore(db, dialect)

	default:
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		pg := database.NewPostgresDB(dbConfig)

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := pg.Connect(connectCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.Postgres = pg

		if err := pg.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}

		db, err := pg.SQLDB()
		if err != nil {
			return err
		}
		c.Store = pkgdb.NewStore(db, dialect)
	}

	if c.Config.Database.AutoMigrate {
		if err := database.Migrate(ctx, c.Store.DB(), dialect, database.MigrateUp); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return nil
}

// initCache connects Redis when configured. A failed connection is not
// fatal: the rate limiter lets requests through while Redis is down.
func (c *Container) initCache(ctx context.Context) {
	if c.Config.Redis.Host == "" {
		logger.Info("redis disabled", nil)
		return
	}

	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		logger.Warn("redis connection failed (non-critical)", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.Redis = rc
	c.Cache = rc
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewHandler(BookService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(CategoryService)
}

// OpenScope acquires a store session and builds the request's services.
func (c *Container) OpenScope(ctx context.Context) (*Scope, error) {
	session, err := c.Store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return NewScope(session), nil
}

// Cleanup closes the store and Redis. Called on shutdown.
func (c *Container) Cleanup() {
	if c.Postgres != nil {
		// closes the sql bridge together with the pool
		if err := c.Postgres.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	} else if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}

	logger.Info("container cleanup completed", nil)
}
