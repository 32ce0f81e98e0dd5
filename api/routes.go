package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public and protected route groups under /api.
// Protected routes run the JWT middleware before any handler; ownership
// checks beyond that live in the handlers themselves.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", handlers.authHandler.register())
			r.Post("/auth/login", handlers.authHandler.login())

			r.Get("/blog", handlers.blogHandler.getBlogPosts())
			r.Get("/blog/{postID}", handlers.blogHandler.getBlogPost())
			r.Get("/blog/{postID}/comments", handlers.blogHandler.getComments())

			r.Post("/contact", handlers.contactHandler.createMessage())

			r.Get("/projects", handlers.projectHandler.getProjects())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(auth.protect)

			r.Post("/blog", handlers.blogHandler.createBlogPost())
			r.Put("/blog/{postID}", handlers.blogHandler.updateBlogPost())
			r.Delete("/blog/{postID}", handlers.blogHandler.deleteBlogPost())
			r.Post("/blog/{postID}/comments", handlers.blogHandler.createComment())

			r.Get("/contact", handlers.contactHandler.getMessages())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
		})
	})
}
