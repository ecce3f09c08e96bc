// ABOUTME: serve command wires the services and runs the HTTP server
// ABOUTME: Shuts down gracefully on SIGINT or SIGTERM

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stevedylandev/wholenote-server/api"
	"github.com/stevedylandev/wholenote-server/api/handlers"
	"github.com/stevedylandev/wholenote-server/core/embed"
	"github.com/stevedylandev/wholenote-server/core/feed"
	"github.com/stevedylandev/wholenote-server/core/services"
	"github.com/stevedylandev/wholenote-server/core/spotify"
	"github.com/stevedylandev/wholenote-server/pkg/config"
	"github.com/stevedylandev/wholenote-server/pkg/featureflags"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, (*config.Config).Validate)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg
	logger := a.logger
	flags := featureflags.NewEnvManager("FEATURE_")

	logger.Info("Starting Wholenote server", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	feedService := feed.NewFeedService(a.deps, feed.Config{
		BaseURL: cfg.Neynar.BaseURL,
		APIKey:  cfg.Neynar.APIKey,
		FilterA: cfg.Neynar.FilterPrimary,
		FilterB: cfg.Neynar.FilterSecondary,
	})

	embedService := embed.NewService(
		a.deps,
		embed.Config{
			ClientID:      cfg.Spotify.ClientID,
			ClientSecret:  cfg.Spotify.ClientSecret,
			FallbackImage: cfg.Spotify.FallbackImage,
		},
		a.tokens,
		a.store,
		spotify.NewMediaLookup(a.deps, cfg.Spotify.APIBaseURL),
		services.NewThumbnailColorService(a.deps),
		flags,
	)

	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = seconds(cfg.Server.RateWindow)
		apiConfig.TrustProxy = cfg.Server.TrustProxy
	}
	humaAPI, router, stopLimiter := api.NewAPIWithMiddleware(apiConfig)
	defer stopLimiter()

	handlers.NewFeedHandler(feedService, logger).RegisterRoutes(humaAPI)
	handlers.NewEmbedHandler(embedService, logger).RegisterRoutes(humaAPI)
	handlers.RegisterHealthRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.HTTP.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
