// ABOUTME: RedisJSON cache implementation using go-rejson on top of go-redis
// ABOUTME: Stores JSON values as native JSON documents so they can be inspected in place

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"github.com/stevedylandev/wholenote-server/core/interfaces"
	"github.com/stevedylandev/wholenote-server/pkg/config"
)

// JSONCache implements the Cache interface using the RedisJSON module.
// Values that are not valid JSON are stored as JSON strings and returned unquoted.
type JSONCache struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewJSONCache creates a RedisJSON-backed cache
func NewJSONCache(cfg config.RedisConfig) (*JSONCache, error) {
	client, err := connect(cfg)
	if err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &JSONCache{client: client, handler: handler}, nil
}

// Get retrieves a JSON document
func (c *JSONCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, err := c.handler.JSONGet(key, ".")
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}
	if val == nil {
		return nil, interfaces.ErrCacheMiss
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected RedisJSON reply type %T", val)
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return []byte(s), nil
	}
	return data, nil
}

// Set stores a JSON document and applies the TTL. A zero TTL never expires.
func (c *JSONCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var doc interface{} = string(value)
	if json.Valid(value) {
		doc = json.RawMessage(value)
	}

	if _, err := c.handler.JSONSet(key, ".", doc); err != nil {
		return err
	}

	if ttl > 0 {
		return c.client.Expire(ctx, key, ttl).Err()
	}
	// Clear any TTL left by an earlier Set
	return c.client.Persist(ctx, key).Err()
}

// Delete removes a document
func (c *JSONCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the Redis connection
func (c *JSONCache) Close() error {
	return c.client.Close()
}
