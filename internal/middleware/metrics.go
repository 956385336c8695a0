package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/service"
)

// Metrics records duration and status of each request against the route
// template, falling back to the raw path for unmatched routes.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, status, duration)
	}
}
