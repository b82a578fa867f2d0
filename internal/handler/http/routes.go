package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/upload", h.upload)

	router.Route("/api/db", func(r chi.Router) {
		r.Get("/", h.dataset)
		r.Get("/size", h.datasetSize)
		r.Post("/manual_phi", h.manualPHI)
		r.Post("/manual_quality", h.manualQuality)
		r.Post("/bug", h.reportBug)
	})

	router.Post("/api/export", h.export)
	router.Get("/api/images/*", h.serveImage)
	router.Post("/api/quality", h.assessQuality)

	return router
}
