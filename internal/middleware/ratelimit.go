package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"classsync/pkg/response"
)

// ExtractionRateLimit throttles AI extraction calls per client IP. Each
// extraction spends external API quota.
func (m Middleware) ExtractionRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.extractPerMin <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.extractPerMin)/60.0), m.extractPerMin)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.ExtractionRateLimit: throttled %s", key)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
