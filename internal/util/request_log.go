package util

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog emits a structured log for each HTTP request, including the
// request id so entries can be correlated.
func RequestLog(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		Logger(c).Info(
			"http_request",
			"service", service,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
