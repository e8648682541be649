package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/internal/metrics"
)

// Metrics records request counts and latencies by route template, so
// /api/blog/posts/:slug is one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
