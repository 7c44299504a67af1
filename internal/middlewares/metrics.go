package middlewares

import (
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/appointments/internal/metrics"
)

// Metrics records the count and duration of every request by route.
func Metrics(c *ginext.Context) {
	start := time.Now()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	method := c.Request.Method
	status := strconv.Itoa(c.Writer.Status())

	metrics.TotalRequests.WithLabelValues(method, path, status).Inc()
	metrics.RequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
}
