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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/login", h.login)
		r.Post("/user", h.createUser)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/user/{id}", h.getUser)
		r.Patch("/user/{id}", h.updateUser)
		r.Delete("/user/{id}", h.deleteUser)

		r.Post("/advert", h.createAdvert)
		r.Get("/advert/{id}", h.getAdvert)
		r.Patch("/advert/{id}", h.updateAdvert)
		r.Delete("/advert/{id}", h.deleteAdvert)
	})

	return router
}
