package metrics

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// HTTPMetricsMiddleware records duration and count for every request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[PANIC] HTTPMetricsMiddleware recovered: %v", rec)
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		ObserveHTTPRequest(r.URL.Path, r.Method, strconv.Itoa(ww.Status()), time.Since(start))
	})
}
