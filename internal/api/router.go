package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds and returns the Chi router with all routes configured.
// Rate limiting is applied globally: 60 requests per minute per IP.
// db and redis may be nil when those stores are not configured.
func NewRouter(handlers *Handlers, db, redis Pinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandlerFunc(db, redis, log))

		r.Get("/places/{city}/advice", handlers.GetAdvice)
		r.Post("/places/{city}/advice/refresh", handlers.RefreshAdvice)

		r.Get("/advice/nearby", handlers.GetNearbyAdvice)
		r.Get("/advice/compare", handlers.CompareAdvice)

		r.Post("/fishing-index", handlers.ScoreObservation)
		r.Get("/salary", handlers.GetSalary)

		if handlers.aliases != nil {
			r.Get("/aliases", handlers.ListAliases)
			r.Put("/aliases/{alias}", handlers.PutAlias)
		}
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
