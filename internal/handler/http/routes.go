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
	router.Use(withGZip)

	router.Get("/api/health", h.health)

	// every record route requires the caller to name its shop
	router.Route("/api/records/{type}", func(r chi.Router) {
		r.Use(withOwnerScope)
		r.Get("/", h.listRecords)
		r.Post("/", h.createRecord)
		r.Put("/{id}", h.updateRecord)
		r.Delete("/{id}", h.deleteRecord)
	})

	return router
}
