// Package api provides the HTTP API layer for the Wholenote server.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers (feed, embed, health)
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging with request IDs, per-IP rate limiting
//
// # Endpoints
//
//	GET /feed?limit=&cursor=   merged casts sharing Spotify links, newest first
//	GET /embed?url=            preview metadata for a Spotify link
//	GET /health                liveness
//
// The OpenAPI spec is available at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router, stop := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	defer stop()
//
//	handlers.NewFeedHandler(feedService, logger).RegisterRoutes(humaAPI)
//	handlers.NewEmbedHandler(embedService, logger).RegisterRoutes(humaAPI)
//	handlers.RegisterHealthRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Every error response has the same body:
//
//	{"error": "Invalid Spotify URL"}
//
// Input errors map to 400. Upstream and credential store failures map to 500
// with a generic message per endpoint and are logged with their cause.
package api
