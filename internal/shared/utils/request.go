package utils

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var ErrInvalidID = errors.New("id must be a positive integer")

// ParseID reads a positive integer identity from a path parameter.
func ParseID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(param)), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ClientIP picks the caller address used to key rate limits.
//
// Order: first X-Forwarded-For entry, X-Real-IP, then the socket peer.
func ClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}

	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		host = c.Request.RemoteAddr
	}
	if net.ParseIP(host) != nil {
		return host
	}
	return "unknown"
}
