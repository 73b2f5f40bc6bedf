package middleware

import (
	"context"
	"io"

	"bookshop-catalog/internal/shared/response"
	"bookshop-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

const ContextKeyScope = "request_scope"

// RequestScope opens a per-request scope before the handler runs and
// closes it after the handler returns, whatever the outcome.
func RequestScope[S io.Closer](open func(ctx context.Context) (S, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, err := open(c.Request.Context())
		if err != nil {
			logger.ErrorWithFields("open request scope", err, map[string]interface{}{
				"request_id": c.GetString(ContextKeyRequestID),
			})
			response.ServiceUnavailable(c, "Store is unavailable")
			c.Abort()
			return
		}

		defer func() {
			if err := scope.Close(); err != nil {
				logger.Warn("close request scope", map[string]interface{}{
					"request_id": c.GetString(ContextKeyRequestID),
					"error":      err.Error(),
				})
			}
		}()

		c.Set(ContextKeyScope, scope)
		c.Next()
	}
}

// ScopeFrom returns the scope stored by RequestScope.
func ScopeFrom[S any](c *gin.Context) (S, bool) {
	v, ok := c.Get(ContextKeyScope)
	if !ok {
		var zero S
		return zero, false
	}
	s, ok := v.(S)
	return s, ok
}
