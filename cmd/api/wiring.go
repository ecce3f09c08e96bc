// ABOUTME: Shared wiring for the CLI commands
// ABOUTME: Builds the logger, cache backend, HTTP client and credential store from config

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stevedylandev/wholenote-server/api/middleware"
	"github.com/stevedylandev/wholenote-server/core/credentials"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
	"github.com/stevedylandev/wholenote-server/core/spotify"
	"github.com/stevedylandev/wholenote-server/infrastructure/cache/keyring"
	"github.com/stevedylandev/wholenote-server/infrastructure/cache/memory"
	"github.com/stevedylandev/wholenote-server/infrastructure/cache/postgres"
	"github.com/stevedylandev/wholenote-server/infrastructure/cache/redis"
	"github.com/stevedylandev/wholenote-server/infrastructure/cache/sqlite"
	stdhttp "github.com/stevedylandev/wholenote-server/infrastructure/http/standard"
	applog "github.com/stevedylandev/wholenote-server/infrastructure/logger/logrus"
	"github.com/stevedylandev/wholenote-server/pkg/config"
)

// closer is satisfied by every cache backend that holds a connection
type closer interface {
	Close() error
}

// app holds the components shared by the commands
type app struct {
	cfg     *config.Config
	logger  *applog.Logger
	deps    interfaces.Dependencies
	store   *credentials.Store
	tokens  *spotify.TokenManager
	closers []closer
}

// newApp loads configuration and builds the shared components.
// validate decides how much of the configuration must be present.
func newApp(ctx context.Context, validate func(*config.Config) error) (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := applog.NewLogger(cfg.Log)
	a := &app{cfg: cfg, logger: logger, closers: []closer{logger}}

	cache := a.openCache(ctx)

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.HTTP.Timeout(),
		stdhttp.WithMaxRetries(cfg.HTTP.MaxRetries),
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		}),
	)

	a.deps = interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}
	a.store = credentials.NewStore(a.deps, cfg.Spotify.CredentialKey)
	a.tokens = spotify.NewTokenManager(a.deps, cfg.Spotify.TokenURL)

	return a, nil
}

// openCache builds the configured backend. Connection failures fall back to
// the in-memory cache so the server still starts.
func (a *app) openCache(ctx context.Context) interfaces.Cache {
	cfg := a.cfg.Cache
	logger := a.logger

	fallback := func(err error) interfaces.Cache {
		logger.Error("Failed to create cache, falling back to memory", map[string]interface{}{
			"cache_type": cfg.Type,
			"error":      err.Error(),
		})
		return a.memoryCache()
	}

	switch cfg.Type {
	case "redis":
		c, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			return fallback(err)
		}
		a.closers = append(a.closers, c)
		logger.Info("Using Redis cache", map[string]interface{}{"address": cfg.Redis.Address})
		return c
	case "redisjson":
		c, err := redis.NewJSONCache(cfg.Redis)
		if err != nil {
			return fallback(err)
		}
		a.closers = append(a.closers, c)
		logger.Info("Using RedisJSON cache", map[string]interface{}{"address": cfg.Redis.Address})
		return c
	case "sqlite":
		c, err := sqlite.NewSQLiteCacheWithLogger(cfg.SQLite.Path, logger)
		if err != nil {
			return fallback(err)
		}
		a.closers = append(a.closers, c)
		logger.Info("Using SQLite cache", map[string]interface{}{"path": cfg.SQLite.Path})
		return c
	case "postgres":
		c, err := postgres.NewPostgresCache(ctx, cfg.Postgres.DSN)
		if err != nil {
			return fallback(err)
		}
		a.closers = append(a.closers, c)
		logger.Info("Using Postgres cache", nil)
		return c
	case "keyring":
		logger.Info("Using keyring cache", map[string]interface{}{"service": cfg.Keyring.Service})
		return keyring.NewKeyringCache(cfg.Keyring.Service)
	default:
		logger.Info("Using memory cache", nil)
		return a.memoryCache()
	}
}

func (a *app) memoryCache() interfaces.Cache {
	m := a.cfg.Cache.Memory
	return memory.NewMemoryCache(seconds(m.DefaultExpiration), seconds(m.CleanupInterval))
}

// Close releases backend connections and the log file, last opened first
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}
