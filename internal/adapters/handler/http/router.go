package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler, userHandler *UserHandler, authHandler *AuthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if authHandler != nil {
		r.Route("/oauth", func(r chi.Router) {
			r.Post("/callback", authHandler.GoogleCallback)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware)

		if userHandler != nil {
			r.Get("/users/me", userHandler.GetMe)
		}

		r.Route("/polls", func(r chi.Router) {
			r.Post("/", pollHandler.CreatePoll)
			r.Get("/", pollHandler.ListMyPolls)
			r.Get("/{id}", pollHandler.GetPoll)
			r.Put("/{id}", pollHandler.UpdatePoll)
			r.Delete("/{id}", pollHandler.DeletePoll)

			r.Post("/{id}/votes", voteHandler.VoteOnPoll)
			r.Get("/{id}/results", voteHandler.GetResults)
		})
	})

	return r
}
