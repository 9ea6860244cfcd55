package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tech0-step3/portal-web/internal/logging"
	"github.com/tech0-step3/portal-web/internal/metrics"
)

// AccessLog logs method, path, status and latency of every request and feeds
// the HTTP metrics. Routes are labelled by their pattern, not the raw path.
func AccessLog(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.RecordHTTPRequest(c.Request.Method, route, status, latency)
		logging.FromContext(c.Request.Context()).Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
		)
	}
}

// NoStore marks responses as uncacheable; every page reflects the backend
// state at the time of the request.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
