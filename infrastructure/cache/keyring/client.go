// ABOUTME: OS keyring cache implementation for single-host deployments
// ABOUTME: Stores each entry as base64 with its own expiry under one service name

package keyring

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

// DefaultService is the keyring service entries are filed under
const DefaultService = "wholenote-server"

// entry is what gets written to the keyring. Expires is unix milliseconds, 0 for never.
type entry struct {
	Value   string `json:"value"`
	Expires int64  `json:"expires,omitempty"`
}

// Client implements the Cache interface over the system keyring
type Client struct {
	service string
	now     func() time.Time
}

// NewKeyringCache creates a keyring cache for the given service name
func NewKeyringCache(service string) *Client {
	if service == "" {
		service = DefaultService
	}
	return &Client{service: service, now: time.Now}
}

// Get retrieves a value from the keyring
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	secret, err := keyring.Get(c.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keyring: %w", err)
	}

	var e entry
	if err := json.Unmarshal([]byte(secret), &e); err != nil {
		return nil, fmt.Errorf("failed to decode keyring entry: %w", err)
	}

	if e.Expires != 0 && c.now().UnixMilli() >= e.Expires {
		_ = keyring.Delete(c.service, key)
		return nil, interfaces.ErrCacheMiss
	}

	value, err := base64.StdEncoding.DecodeString(e.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode keyring value: %w", err)
	}
	return value, nil
}

// Set stores a value in the keyring. A zero TTL never expires.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := entry{Value: base64.StdEncoding.EncodeToString(value)}
	if ttl > 0 {
		e.Expires = c.now().Add(ttl).UnixMilli()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode keyring entry: %w", err)
	}

	if err := keyring.Set(c.service, key, string(data)); err != nil {
		return fmt.Errorf("failed to write keyring: %w", err)
	}
	return nil
}

// Delete removes a value from the keyring
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := keyring.Delete(c.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete keyring entry: %w", err)
	}
	return nil
}
