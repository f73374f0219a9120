// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS and the middleware chain

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"x2colon-api/api/middleware"
	"x2colon-api/core/interfaces"
)

const (
	// Title is the API title shown in the OpenAPI document
	Title = "x2colon API"

	// Version is the API version shown in the OpenAPI document and on /health
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger      interfaces.Logger
	RateLimiter *middleware.RateLimiter // nil disables limiting; the caller stops it
	CORSOrigins []string                // defaults to any origin
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After", "X-RateLimit-Limit"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	})
}

func newHumaConfig() huma.Config {
	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Sums timestamp ranges such as (0:00-1:23) found in text and removes them from scripts"
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler(nil))

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, newHumaConfig())

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests are answered before anything else
	router.Use(corsHandler(cfg.CORSOrigins))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5, "application/json", "application/problem+json"))

	api := humachi.New(router, newHumaConfig())

	return api, router
}
