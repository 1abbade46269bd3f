package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apiMiddleware "github.com/devsecops-demo/api/internal/api/middleware"
	"github.com/devsecops-demo/api/internal/config"
	"github.com/devsecops-demo/api/internal/service"
)

// rateLimitCleanupInterval is how often idle rate limiter buckets are swept.
const rateLimitCleanupInterval = 2 * time.Minute

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	mathService   service.MathService
	healthService service.HealthService

	// rateLimiter is nil when rate limiting is disabled.
	rateLimiter *apiMiddleware.RateLimiter
}

// newApplication wires the services described by cfg.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config:        cfg,
		logger:        logger,
		mathService:   service.NewMathService(),
		healthService: service.NewHealthService(cfg.App.Name),
	}

	if cfg.RateLimit.Enabled {
		app.rateLimiter = apiMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		logger.Info("Rate limiting enabled",
			"requests_per_second", cfg.RateLimit.RequestsPerSecond,
			"burst", cfg.RateLimit.Burst)
	}

	logger.Info("Application initialized successfully", "app_name", cfg.App.Name)
	return app
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if app.rateLimiter != nil {
		app.rateLimiter.StartJanitor(ctx, rateLimitCleanupInterval)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
