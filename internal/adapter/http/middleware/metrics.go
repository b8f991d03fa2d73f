package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Metrics middleware records HTTP metrics.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// idSegments maps route prefixes whose next path segment is a record
// ID. Collapsing the ID keeps label cardinality bounded.
var idSegments = map[string]bool{
	"/cardio/":  true,
	"/debt/":    true,
	"/workout/": true,
	"/bonus/":   true,
}

// literalActions are fixed second segments that are not IDs.
var literalActions = map[string]bool{
	"log":      true,
	"today":    true,
	"week":     true,
	"earnings": true,
	"baseline": true,
	"stats":    true,
	"assign":   true,
	"pending":  true,
	"overdue":  true,
	"create":   true,
	"active":   true,
	"total":    true,
	"interest": true,
	"add":      true,
}

// normalizePath normalizes URL paths to avoid high cardinality.
// /debt/01ABC123/pay -> /debt/:id/pay
func normalizePath(path string) string {
	for prefix := range idSegments {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := path[len(prefix):]
		segment := rest
		suffix := ""
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			segment = rest[:i]
			suffix = rest[i:]
		}
		if segment == "" || literalActions[segment] {
			return path
		}
		return prefix + ":id" + suffix
	}
	return path
}
