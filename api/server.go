// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS and the request middleware chain

package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/stevedylandev/wholenote-server/api/middleware"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

const (
	apiTitle       = "Wholenote API"
	apiVersion     = "1.0.0"
	apiDescription = "Farcaster casts that share Spotify links, and link previews for Spotify resources"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window, 0 disables limiting
	RateWindow time.Duration // rate limit window
	TrustProxy bool          // key the limiter by X-Forwarded-For / X-Real-IP
}

// corsHandler allows every origin since the API is public and read-only
func corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "Retry-After"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	})
}

func newHumaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler())

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, newHumaConfig())

	return api, router
}

// NewAPIWithMiddleware creates a new API with logging and rate limiting configured.
// The returned stop function releases the rate limiter's background goroutine.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, func()) {
	router := chi.NewRouter()

	// CORS goes first so preflight requests are never rate limited
	router.Use(corsHandler())

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	stop := func() {}
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).TrustProxyHeaders(cfg.TrustProxy)
		router.Use(middleware.RateLimitMiddleware(limiter))
		stop = limiter.Stop
	}

	api := humachi.New(router, newHumaConfig())

	return api, router, stop
}
