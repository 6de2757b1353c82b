// Package pprof exposes the runtime profiling endpoints on a mountable
// router, kept behind the auth middleware.
package pprof

import (
	"net/http"
	"net/http/pprof"
	"strings"

	"github.com/go-chi/chi/v5"
)

const mountPath = "/debug/pprof/"

// Handler returns the router serving the pprof index and profiles.
func Handler() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, r.RequestURI+"/", http.StatusMovedPermanently)
			return
		}
		pprof.Index(w, r)
	})

	r.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		handlePprofRequest(w, r)
	})

	return r
}

func handlePprofRequest(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, mountPath)

	switch path {
	case "cmdline":
		pprof.Cmdline(w, r)
	case "profile":
		pprof.Profile(w, r)
	case "symbol":
		pprof.Symbol(w, r)
	case "trace":
		pprof.Trace(w, r)
	case "":
		pprof.Index(w, r)
	default:
		// allocs, block, goroutine, heap, mutex, threadcreate
		pprof.Handler(path).ServeHTTP(w, r)
	}
}
