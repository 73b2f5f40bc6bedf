package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"bookshop-catalog/internal/shared/response"
	"bookshop-catalog/pkg/cache"
	"bookshop-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

const rateLimitKeyPrefix = "ratelimit:write:"

// RateLimit caps POST, PUT and DELETE requests per client in fixed windows
// counted in the cache. Reads are never limited. When the cache errors the
// request goes through.
func RateLimit(store cache.Cache, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || limit <= 0 || !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rateLimitKeyPrefix + clientIPFrom(c)

		count, err := store.Increment(ctx, key)
		if err != nil {
			logger.Warn("rate limit unavailable", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		if count == 1 {
			if err := store.Expire(ctx, key, window); err != nil {
				logger.Warn("rate limit expire failed", map[string]interface{}{
					"key":   key,
					"error": err.Error(),
				})
			}
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))

		if count > int64(limit) {
			if ttl, err := store.TTL(ctx, key); err == nil && ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
			}
			logger.Info("rate limit exceeded", map[string]interface{}{
				"key":   key,
				"count": count,
			})
			response.TooManyRequests(c, "Too many write requests, try again later")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
		c.Next()
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}
