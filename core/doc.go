// Package core contains the business logic for the Wholenote API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Cast, FeedPage, ResourceReference, CachedCredential)
// - feed: Merges two filtered social feed queries into one ranked page
// - credentials: Stores the single shared access token in a cache backend
// - spotify: Client-credentials token manager and media preview lookup
// - embed: Link preview pipeline built on top of spotify
// - services: Theme color extraction for preview artwork
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/stevedylandev/wholenote-server/core/feed"
//	    "github.com/stevedylandev/wholenote-server/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	feedService := feed.NewFeedService(deps, feed.Config{
//	    APIKey:  apiKey,
//	    FilterA: "open.spotify.com",
//	    FilterB: "spotify.link",
//	})
//
//	// Merge the newest casts from both filters
//	page, err := feedService.Latest(ctx, 25, "")
package core
