package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	// security headers must be in place before the HTTPS redirect can
	// short-circuit the chain, so every 308 carries them too
	router.Use(h.withSecurityHeaders)
	router.Use(h.withForcedHTTPS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	router.Get("/health", h.health)
	router.Get("/", h.index)

	router.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.With(h.requireJSONContentType).Post("/", h.createAccount)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getAccount)
			r.With(h.requireJSONContentType).Put("/", h.updateAccount)
			r.Delete("/", h.deleteAccount)
		})
	})

	return router
}
