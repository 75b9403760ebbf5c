// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"keyword-analysis-api/api/middleware"
	"keyword-analysis-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimit is allowed requests per second per client IP; 0 disables
	RateLimit int

	// RateBurst is the limiter burst size
	RateBurst int
}

// NewAPI creates and configures a new Huma API instance with middleware
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests bypass the rest of the chain
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	router.Use(middleware.MetricsMiddleware())

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	router.Handle("/metrics", promhttp.Handler())

	config := huma.DefaultConfig("Keyword Analysis API", "1.0.0")
	config.Info.Description = "API for analyzing competitor advertising and keyphrase topics across domains"

	// OpenAPI spec at /openapi.json, Swagger UI at /docs
	humaAPI := humachi.New(router, config)

	return humaAPI, router
}
