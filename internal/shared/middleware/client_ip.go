package middleware

import (
	"bookshop-catalog/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

const ContextKeyClientIP = "client_ip"

// ClientIP resolves the caller address once per request. Register it
// before Logger and RateLimit.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyClientIP, utils.ClientIP(c))
		c.Next()
	}
}

func clientIPFrom(c *gin.Context) string {
	if ip := c.GetString(ContextKeyClientIP); ip != "" {
		return ip
	}
	return utils.ClientIP(c)
}
