package middleware

import (
	"strconv"
	"time"

	"github.com/GIZZN/TechnoShop/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records a counter and latency histogram per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.RequestDurationMS.WithLabelValues(
			c.Request.Method, path,
		).Observe(float64(time.Since(start).Milliseconds()))
	}
}
