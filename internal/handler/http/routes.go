package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withIdentity)
	router.Use(h.withMetrics)
	router.Use(withLogging)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// member
	router.Post("/member/registrasi", h.registrasi)
	router.Post("/member/login", h.login)

	// produk
	router.Post("/produk", h.createProduk)
	router.Get("/produk", h.listProduk)
	router.Get("/produk/{id}", h.getProduk)
	router.Put("/produk/{id}/update", h.updateProduk)
	router.Delete("/produk/{id}", h.deleteProduk)

	// service
	router.Get("/version", h.getServerVersion)
	router.Get("/health", h.health)
	router.Method("GET", "/metrics", h.metrics.Handler())

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
