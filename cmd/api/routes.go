package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.MethodNotAllowed(app.Http.MethodNotAllowed)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(app.dispatchToWorkers)
	router.Use(app.Recoverer)
	router.Use(app.Authenticate)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.healthcheck)
		r.Get("/leaderboard", app.getLeaderboard)
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", app.register)
			r.Post("/login", app.login)
		})
		r.Route("/media", func(r chi.Router) {
			r.Get("/", app.listMedia)
			r.Get("/{id}", app.getMedia)
			r.Get("/{id}/ratings", app.listMediaRatings)
			r.Group(func(r chi.Router) {
				r.Use(app.requireAuthenticatedUser)
				r.Post("/", app.createMedia)
				r.Put("/{id}", app.updateMedia)
				r.Delete("/{id}", app.deleteMedia)
				r.Post("/{id}/like", app.likeMedia)
			})
		})
		r.Route("/ratings", func(r chi.Router) {
			r.Get("/", app.listRatings)
			r.Group(func(r chi.Router) {
				r.Use(app.requireAuthenticatedUser)
				r.Post("/", app.createRating)
				r.Put("/{id}", app.updateRating)
				r.Delete("/{id}", app.deleteRating)
				r.Put("/{id}/like", app.likeRating)
				r.Put("/{id}/confirm", app.confirmRating)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthenticatedUser)
			r.Get("/profile", app.getProfile)
			r.Put("/profile", app.updateProfile)
			r.Delete("/profile", app.deleteProfile)
			r.Get("/favorites", app.listFavorites)
			r.Post("/favorites/{mediaId}", app.addFavorite)
			r.Delete("/favorites/{mediaId}", app.removeFavorite)
			r.Get("/recommendations", app.getRecommendations)
		})
	})
	return router
}
