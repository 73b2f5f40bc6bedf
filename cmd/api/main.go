package main

import (
	"bookshop-catalog/internal/config"
	"bookshop-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// .env.local overrides .env; real environment variables override both
	config.LoadEnvFiles()

	env := getEnv("APP_ENV", "development")
	logger.Init(env, getEnv("LOG_LEVEL", "info"))

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}
