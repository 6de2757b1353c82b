package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method", "status_code"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"path", "method", "status_code"})

	cacheRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cache_request_duration_seconds",
		Help:    "Duration of cache requests.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"method", "cache_hit"})

	cacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_requests_total",
		Help: "Total number of cache requests.",
	}, []string{"method", "cache_hit"})

	dbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_request_duration_seconds",
		Help:    "Duration of database requests.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"method"})

	dbRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_requests_total",
		Help: "Total number of database requests.",
	}, []string{"method"})

	rentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rents_created_total",
		Help: "Total number of loan transactions created.",
	})
)

// ObserveHTTPRequest records one handled HTTP request.
func ObserveHTTPRequest(path, method, statusCode string, duration time.Duration) {
	httpRequestDuration.WithLabelValues(path, method, statusCode).Observe(duration.Seconds())
	httpRequestsTotal.WithLabelValues(path, method, statusCode).Inc()
}

// ObserveCacheRequest records one cache lookup or store.
func ObserveCacheRequest(method string, hit bool, duration time.Duration) {
	hitStr := strconv.FormatBool(hit)
	cacheRequestDuration.WithLabelValues(method, hitStr).Observe(duration.Seconds())
	cacheRequestsTotal.WithLabelValues(method, hitStr).Inc()
}

// ObserveDBRequest records one database round trip.
func ObserveDBRequest(method string, duration time.Duration) {
	dbRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
	dbRequestsTotal.WithLabelValues(method).Inc()
}

// IncRentCreated counts a successfully created loan.
func IncRentCreated() {
	rentsCreatedTotal.Inc()
}
