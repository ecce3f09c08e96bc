// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, upstream APIs and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// CacheTypes lists the supported cache backends
var CacheTypes = []string{"memory", "redis", "redisjson", "sqlite", "postgres", "keyring"}

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// Neynar contains the social feed API configuration
	Neynar NeynarConfig

	// Spotify contains the media API configuration
	Spotify SpotifyConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per IP per window
	RateLimit int

	// RateWindow is the rate limit window in seconds
	RateWindow int

	// TrustProxy makes the rate limiter trust X-Forwarded-For and X-Real-IP
	TrustProxy bool
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend, one of CacheTypes
	Type string

	Redis    RedisConfig
	SQLite   SQLiteConfig
	Postgres PostgresConfig
	Keyring  KeyringConfig
	Memory   MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// PostgresConfig holds Postgres-specific configuration
type PostgresConfig struct {
	// DSN is the connection string
	DSN string
}

// KeyringConfig holds OS keyring configuration
type KeyringConfig struct {
	// Service is the keyring service name entries are filed under
	Service string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int

	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	// TimeoutSeconds bounds every upstream request
	TimeoutSeconds int

	// MaxRetries is the number of extra GET attempts on 5xx responses
	MaxRetries int
}

// Timeout returns the client timeout as a duration
func (h HTTPConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// NeynarConfig holds the feed API configuration
type NeynarConfig struct {
	APIKey  string
	BaseURL string

	// FilterPrimary and FilterSecondary are the embed_url filters that are merged
	FilterPrimary   string
	FilterSecondary string
}

// SpotifyConfig holds the media API configuration
type SpotifyConfig struct {
	ClientID      string
	ClientSecret  string
	TokenURL      string
	APIBaseURL    string
	CredentialKey string
	FallbackImage string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File enables rotating file output when set
	File string
}

// LoadFromEnv loads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", "memory")),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "cache.db"),
			},
			Postgres: PostgresConfig{
				DSN: getEnvOrDefault("POSTGRES_DSN", ""),
			},
			Keyring: KeyringConfig{
				Service: getEnvOrDefault("KEYRING_SERVICE", "wholenote-server"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
				CleanupInterval:   getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 15),
			MaxRetries:     getEnvAsIntOrDefault("HTTP_MAX_RETRIES", 0),
		},
		Neynar: NeynarConfig{
			APIKey:          getEnvOrDefault("NEYNAR_API_KEY", ""),
			BaseURL:         getEnvOrDefault("NEYNAR_BASE_URL", "https://api.neynar.com/v2"),
			FilterPrimary:   getEnvOrDefault("FEED_FILTER_PRIMARY", "open.spotify.com"),
			FilterSecondary: getEnvOrDefault("FEED_FILTER_SECONDARY", "spotify.link"),
		},
		Spotify: SpotifyConfig{
			ClientID:      getEnvOrDefault("SPOTIFY_CLIENT_ID", ""),
			ClientSecret:  getEnvOrDefault("SPOTIFY_CLIENT_SECRET", ""),
			TokenURL:      getEnvOrDefault("SPOTIFY_TOKEN_URL", "https://accounts.spotify.com/api/token"),
			APIBaseURL:    getEnvOrDefault("SPOTIFY_API_BASE_URL", "https://api.spotify.com/v1"),
			CredentialKey: getEnvOrDefault("SPOTIFY_CREDENTIAL_KEY", "spotify_token"),
			FallbackImage: getEnvOrDefault("EMBED_FALLBACK_IMAGE", "https://wholenote.app/og.png"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 || c.Server.RateWindow < 1 {
		return errors.New("rate limit and window must be at least 1")
	}

	if !lo.Contains(CacheTypes, c.Cache.Type) {
		return fmt.Errorf("cache type must be one of %s", strings.Join(CacheTypes, ", "))
	}

	if (c.Cache.Type == "redis" || c.Cache.Type == "redisjson") && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Cache.Type == "postgres" && c.Cache.Postgres.DSN == "" {
		return errors.New("POSTGRES_DSN is required when using postgres cache")
	}

	if c.HTTP.TimeoutSeconds < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.HTTP.MaxRetries < 0 {
		return errors.New("http max retries cannot be negative")
	}

	if c.Neynar.APIKey == "" {
		return errors.New("NEYNAR_API_KEY is required")
	}

	if c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "" {
		return errors.New("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}

// ValidateCache checks only the settings needed to open the cache backend
func (c *Config) ValidateCache() error {
	if !lo.Contains(CacheTypes, c.Cache.Type) {
		return fmt.Errorf("cache type must be one of %s", strings.Join(CacheTypes, ", "))
	}
	if c.Cache.Type == "postgres" && c.Cache.Postgres.DSN == "" {
		return errors.New("POSTGRES_DSN is required when using postgres cache")
	}
	return nil
}
