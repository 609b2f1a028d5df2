package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withUser)

	router.Get("/", h.index)

	router.Route("/auth", func(r chi.Router) {
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	// routes requiring an authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.loginRequired)
		r.Get("/create", h.createForm)
		r.Post("/create", h.createPost)
		r.Get("/{id}/update", h.updateForm)
		r.Post("/{id}/update", h.updatePost)
		r.Post("/{id}/delete", h.deletePost)
	})

	return router
}
