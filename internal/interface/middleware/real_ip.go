package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context key under which the resolved client address is stored.
const ctxRealIPKey = "real_ip"

// RealIP resolves the client address behind the proxy chain and stores it
// in the context for the rate limiter key functions. Cloudflare's header
// wins, then the left-most X-Forwarded-For hop, then Gin's own ClientIP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxRealIPKey, resolveClientIP(c))
		c.Next()
	}
}

func resolveClientIP(c *gin.Context) string {
	if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
		if ip := net.ParseIP(cf); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
