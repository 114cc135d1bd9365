package middleware

import (
	"github.com/gin-gonic/gin"
)

// TrustProxies limits which peers may set X-Forwarded-For / X-Real-IP.
// With no proxies configured the TCP peer address is always the client IP,
// so a client cannot pick its own rate-limit bucket.
func TrustProxies(r *gin.Engine, proxies []string) error {
	r.ForwardedByClientIP = true
	r.RemoteIPHeaders = []string{"X-Forwarded-For", "X-Real-IP"}
	if len(proxies) == 0 {
		return r.SetTrustedProxies(nil)
	}
	return r.SetTrustedProxies(proxies)
}

func getClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
