package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/devsecops-demo/api/internal/api"
	apiMiddleware "github.com/devsecops-demo/api/internal/api/middleware"
)

// setupRouter creates the router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if app.config.Server.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(apiMiddleware.Recoverer(api.HandleAPIError))
	if app.rateLimiter != nil {
		r.Use(app.rateLimiter.Middleware(api.HandleAPIError))
	}

	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.MethodNotAllowedHandler)

	healthHandler := api.NewHealthHandler(app.healthService)
	mathHandler := api.NewMathHandler(app.mathService)

	r.Get("/api/health", api.Handle(healthHandler.GetHealth))
	r.Post("/api/suma", api.Handle(mathHandler.Sum))

	return r
}
