package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *SessionHandler, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter))

		r.Post("/mask", h.Mask)

		r.Post("/sessions", h.Create)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Delete("/", h.Delete)

			r.Post("/negotiation", h.CalculateNegotiation)
			r.Delete("/negotiation", h.ClearNegotiation)

			r.Get("/installments", h.ListInstallments)
			r.Post("/installments", h.AddInstallment)
			r.Delete("/installments/{index}", h.RemoveInstallment)

			r.Post("/multi", h.CalculateMulti)
			r.Delete("/multi", h.ClearMulti)

			r.Post("/simulation", h.Simulate)
			r.Delete("/simulation", h.ClearSimulation)
		})
	})

	return r
}
