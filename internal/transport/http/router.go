package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the onboarding endpoints plus health and metrics.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/non-business", func(r chi.Router) {
		r.Post("/search", h.handleSearch)
		r.Post("/", h.handlePost)
		r.Route("/{token}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Post("/contact-details", h.handleContact)
			r.Post("/addresses", h.handleAddress)
			r.Patch("/", h.handlePatch)
			r.Patch("/economic-data", h.handleEconomicData)
			r.Post("/terms", h.handleTerms)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func pathToken(r *http.Request) string {
	return chi.URLParam(r, "token")
}
