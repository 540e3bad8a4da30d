package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.StripSlashes)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	// routes guarded by the bearer token unless auth is disabled
	router.Group(func(r chi.Router) {
		if !h.authDisabled {
			r.Use(h.auth)
		}

		r.Get("/", h.greeting)

		r.Get("/humans", h.listHumans)
		r.Post("/humans", h.createHuman)
		r.Get("/humans/{id}", h.getHuman)
		r.Put("/humans/{id}", h.updateHuman)
		r.Delete("/humans/{id}", h.deleteHuman)
	})

	return router
}
