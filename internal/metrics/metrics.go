package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "path"},
	)

	SquareCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "square_api_calls_total",
			Help: "Total number of Square API calls by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	SquareCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "square_api_call_duration_seconds",
			Help: "Duration of Square API calls in seconds",
		},
		[]string{"endpoint"},
	)
)

// ObserveSquareCall records one vendor round trip.
func ObserveSquareCall(endpoint string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	SquareCallsTotal.WithLabelValues(endpoint, outcome).Inc()
	SquareCallDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// Middleware records per-request counters keyed by the route template, so
// path parameters do not explode label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus registry on a gin route.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
