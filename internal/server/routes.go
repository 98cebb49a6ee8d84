package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"golden_traff/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Get("/ping", handler(s.getPing))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handler(s.getPing))
		r.Get("/sum", handler(s.getSum))
		r.Get("/leaderboard", handler(s.getLeaderboard))

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", handler(s.getDeals))
			r.Post("/", handler(s.postDeal))
			r.Patch("/{id}", handler(s.patchDeal))
			r.Delete("/{id}", handler(s.deleteDeal))
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/sum", handler(s.getTeamSum))
			r.Get("/deals", handler(s.getTeamDeals))
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", handler(s.getTasks))
			r.Post("/", handler(s.postTask))
			r.Patch("/{id}", handler(s.patchTask))
			r.Delete("/{id}", handler(s.deleteTask))
		})

		r.Route("/telegram", func(r chi.Router) {
			r.Post("/sync", handler(s.postTelegramSync))
			r.Get("/sync", handler(s.getTelegramSync))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, asFailure(err))
		}
	}
}
