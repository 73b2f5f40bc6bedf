package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"bookshop-catalog/internal/shared/middleware"
	"bookshop-catalog/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		// Catalog routes: writes are rate limited, every request gets its
		// own store session.
		catalog := v1.Group("",
			middleware.RateLimit(c.Cache, c.Config.RateLimit.Requests, c.Config.RateLimit.Window),
			middleware.RequestScope(c.OpenScope),
		)
		setupBookRoutes(catalog, c)
		setupCategoryRoutes(catalog, c)
	}

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(rg *gin.RouterGroup, c *container.Container) {
	books := rg.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.GET("/get-books-by-category/:categoryId", c.BookHandler.ListByCategory)
		books.GET("/search/:bookName", c.BookHandler.SearchByName)
		books.GET("/search-book-with-category/:searchKey", c.BookHandler.SearchWithCategory)
		books.POST("", c.BookHandler.CreateBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(rg *gin.RouterGroup, c *container.Container) {
	categories := rg.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.GET("/search/:category", c.CategoryHandler.Search)
		categories.POST("", c.CategoryHandler.Create)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
	}
}

// healthCheckHandler reports 503 only when the store is down. Redis is
// optional and can only degrade the status.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}
		status := http.StatusOK

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := gin.H{"driver": appCtx.Config.Database.Driver, "status": "ok"}
		if err := appCtx.Store.Ping(ctx); err != nil {
			dbStatus["status"] = "error: " + err.Error()
			health["status"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
		if appCtx.Postgres != nil {
			if stats, err := appCtx.Postgres.Stats(); err == nil {
				dbStatus["pool"] = stats
			}
		}

		redisStatus := "disabled"
		if appCtx.Redis != nil {
			redisStatus = "ok"
			if err := appCtx.Redis.HealthCheck(ctx); err != nil {
				redisStatus = "error: " + err.Error()
				if status == http.StatusOK {
					health["status"] = "degraded"
				}
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		c.JSON(status, health)
	}
}

// getEnv returns defaultValue when key is unset or empty.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
