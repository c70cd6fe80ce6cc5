package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultAllowedOrigins = []string{"*"}

// withCORS allows browser clients from the configured origins to call the
// API with credentials.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
