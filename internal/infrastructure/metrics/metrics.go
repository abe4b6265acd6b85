package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})

	// RequestDuration observes request latency by route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bloghub_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ModerationDecisions counts admin approve/reject decisions by outcome.
	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_moderation_decisions_total",
		Help: "Total number of blog moderation decisions.",
	}, []string{"status"})
)

// Middleware records request counts and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
