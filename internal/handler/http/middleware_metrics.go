package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records request count and latency per matched route pattern.
// Scrapes of /metrics are not recorded.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		done := h.metrics.RequestStarted()
		defer done()

		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		h.metrics.ObserveRequest(r.Method, route, mw.statusOrOK(), time.Since(start))
	})
}
