package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Route("/checkout/sessions", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateSession)
			r.Get("/", h.Sessions)

			r.Route("/{session_id}", func(r chi.Router) {
				r.Get("/", h.Session)
				r.Post("/calculate", h.Calculate)
				r.Post("/promocode", h.ApplyPromoCode)
				r.Delete("/promocode", h.ResetPromo)
				r.Post("/points/toggle", h.TogglePoints)
				r.Post("/pay", h.Pay)
				r.Post("/pay/free", h.PayFree)
			})
		})

		r.Route("/carwashes", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/latest", h.LatestCarwashes)
		})
	})

	return mux
}
