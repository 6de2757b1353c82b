package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestObserveHTTPRequest tests that a handled request increments the counter
func TestObserveHTTPRequest(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	ObserveHTTPRequest("/api/books", "GET", "200", 100*time.Millisecond)

	counter := httpRequestsTotal.WithLabelValues("/api/books", "GET", "200")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter), "Counter should be incremented")
}

// TestObserveHTTPRequest_MultipleRequests tests counting over several requests
func TestObserveHTTPRequest_MultipleRequests(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	for i := 0; i < 5; i++ {
		ObserveHTTPRequest("/api/books", "GET", "200", 50*time.Millisecond)
	}

	counter := httpRequestsTotal.WithLabelValues("/api/books", "GET", "200")
	assert.Equal(t, float64(5), testutil.ToFloat64(counter), "Counter should be 5")
}

// TestObserveCacheRequest tests recording a cache hit
func TestObserveCacheRequest(t *testing.T) {
	cacheRequestsTotal.Reset()
	cacheRequestDuration.Reset()

	ObserveCacheRequest("PublishingHouseGet", true, 10*time.Millisecond)

	counter := cacheRequestsTotal.WithLabelValues("PublishingHouseGet", "true")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter), "Cache counter should be incremented")
}

// TestObserveCacheRequest_Miss tests recording a cache miss
func TestObserveCacheRequest_Miss(t *testing.T) {
	cacheRequestsTotal.Reset()
	cacheRequestDuration.Reset()

	ObserveCacheRequest("PublishingHouseGet", false, 5*time.Millisecond)

	counter := cacheRequestsTotal.WithLabelValues("PublishingHouseGet", "false")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter), "Cache miss counter should be incremented")
}

// TestObserveDBRequest tests recording a database round trip
func TestObserveDBRequest(t *testing.T) {
	dbRequestsTotal.Reset()
	dbRequestDuration.Reset()

	ObserveDBRequest("BookList", 20*time.Millisecond)

	counter := dbRequestsTotal.WithLabelValues("BookList")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter), "DB counter should be incremented")
}

// TestHTTPMetricsMiddleware tests that instrumented requests pass through
func TestHTTPMetricsMiddleware(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := HTTPMetricsMiddleware(testHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "Request should succeed")

	counter := httpRequestsTotal.WithLabelValues("/api/books", "GET", "200")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter), "Request should be counted")
}
