package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/citecheck/internal/api/middleware"
)

// Router creates the application router with all routes and middleware.
func (app *Application) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.PeerAddr)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.NewTraceMiddleware(app.logger))
	if app.metrics != nil {
		r.Use(middleware.Metrics(app.metrics))
	}
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.Logger)
		r.Use(app.rateLimiter.Middleware)
		r.Use(middleware.BodyLimit(app.config.Validation.MaxBodyBytes))

		r.Post("/citations/validate", app.citationHandler.Validate)
		r.Post("/citations/validate/batch", app.citationHandler.ValidateBatch)
		r.Get("/styles", app.citationHandler.ListStyles)
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
