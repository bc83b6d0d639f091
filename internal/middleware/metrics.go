package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"soapdesign-api/internal/metrics"
)

// Metrics считает запросы по шаблону маршрута, чтобы id в пути не раздували кардинальность.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
