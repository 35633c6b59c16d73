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
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.register)
		r.Post("/login", h.login)
		r.Get("/posts/{postID}", h.getPost)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/posts", h.listPosts)
		r.Post("/posts", h.createPost)
		r.Put("/posts/{postID}", h.updatePost)
		r.Delete("/posts/{postID}", h.deletePost)
	})

	return router
}
