package server

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/citecheck/internal/api"
	"github.com/phrazzld/citecheck/internal/api/middleware"
	"github.com/phrazzld/citecheck/internal/citation"
	"github.com/phrazzld/citecheck/internal/config"
	"github.com/phrazzld/citecheck/internal/platform/metrics"
)

// Application holds the shared dependencies of the HTTP service.
type Application struct {
	config   *config.Config
	logger   *slog.Logger
	registry *citation.Registry

	metrics         *metrics.Metrics
	citationHandler *api.CitationHandler
	rateLimiter     *middleware.RateLimiter
}

// New creates an Application. A nil registry means the built-in styles.
func New(cfg *config.Config, logger *slog.Logger, registry *citation.Registry) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = citation.DefaultRegistry()
	}

	// Requests without a format fall back to the default style.
	if _, ok := registry.Lookup(cfg.Validation.DefaultStyle); !ok {
		return nil, fmt.Errorf("%w: default style %q", ErrUnknownDefaultStyle, cfg.Validation.DefaultStyle)
	}

	app := &Application{
		config:   cfg,
		logger:   logger,
		registry: registry,
	}

	if cfg.Server.MetricsEnabled {
		app.metrics = metrics.New()
	}

	app.citationHandler = api.NewCitationHandler(registry, cfg.Validation, logger, app.metrics)
	app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, app.metrics)

	logger.Info("Application initialized successfully",
		"styles", registry.Styles(),
		"default_style", cfg.Validation.DefaultStyle,
		"rate_limit_rps", cfg.RateLimit.RequestsPerSecond,
		"metrics_enabled", cfg.Server.MetricsEnabled)

	return app, nil
}
