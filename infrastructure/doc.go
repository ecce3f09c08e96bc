// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache over patrickmn/go-cache
// - cache/redis: Redis cache, plus a RedisJSON variant over go-rejson
// - cache/sqlite: File-backed cache that survives restarts
// - cache/postgres: Shared cache table over a pgx pool
// - cache/keyring: OS keyring cache for single-host installs
// - http/standard: Standard library HTTP client with per-request headers and optional retries
// - logger/logrus: Structured logger over logrus with optional file rotation
//
// Every cache backend reports an absent or expired key as interfaces.ErrCacheMiss,
// and any other error as a backend failure. A zero TTL never expires.
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "spotify_token", payload, 0)
//	value, err := cache.Get(ctx, "spotify_token")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(15*time.Second, standard.WithMaxRetries(2))
//	resp, err := client.Get(ctx, url, map[string]string{"accept": "application/json"})
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.NewLogger(cfg.Log)
//	logger.Info("Feed merged", map[string]interface{}{
//	    "count": 25,
//	})
package infrastructure
