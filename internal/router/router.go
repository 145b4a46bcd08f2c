package router

import (
	"net/http"
	"time"

	"github.com/crispwatch/media-gateway/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Setup builds the route tree. The authn middleware is supplied by the
// caller: every /api/v1 route requires a resolved user identity.
func Setup(h *handler.Handler, authn func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", healthCheck)

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authn)

		r.Route("/search", func(r chi.Router) {
			r.Get("/history", h.GetHistory)
			r.Delete("/history/{id}", h.DeleteHistoryItem)
			r.Get("/{category}/{query}", h.Search)
		})

		r.Route("/{category}", func(r chi.Router) {
			r.Get("/trending", h.GetTrending)
			r.Get("/category/{list}", h.GetCategoryList)
			r.Get("/{id}/watch", h.GetWatchBundle)
			r.Get("/{id}/details", h.GetDetails)
			r.Get("/{id}/trailers", h.GetTrailers)
			r.Get("/{id}/similar", h.GetSimilar)
		})
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
