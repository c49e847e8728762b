package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		if h.authEnabled() {
			r.Use(h.withAuth)
		}
		r.Post("/api/scan", h.scan)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
