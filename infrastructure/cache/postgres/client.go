// ABOUTME: Postgres-based cache implementation over a pgx connection pool
// ABOUTME: Lets several server instances share one credential record

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

const schema = `
create table if not exists cache_entries (
  key        text primary key,
  value      bytea not null,
  expires_at timestamptz
);`

// Client implements the Cache interface using Postgres.
// A NULL expires_at marks an entry that never expires.
type Client struct {
	pool *pgxpool.Pool
}

// NewPostgresCache connects to Postgres and ensures the cache table exists
func NewPostgresCache(ctx context.Context, dsn string) (*Client, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn cannot be empty")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if _, err := pool.Exec(pingCtx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Client{pool: pool}, nil
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `
select value from cache_entries
where key = $1 and (expires_at is null or expires_at > now());`

	var value []byte
	err := c.pool.QueryRow(ctx, q, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set upserts a value with TTL. A zero TTL never expires.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	const q = `
insert into cache_entries (key, value, expires_at)
values ($1, $2, $3)
on conflict (key) do update set value = excluded.value, expires_at = excluded.expires_at;`

	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	if _, err := c.pool.Exec(ctx, q, key, value, expiresAt); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if _, err := c.pool.Exec(ctx, `delete from cache_entries where key = $1;`, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

// Purge removes expired entries and returns how many were removed
func (c *Client) Purge(ctx context.Context) (int64, error) {
	tag, err := c.pool.Exec(ctx, `delete from cache_entries where expires_at is not null and expires_at <= now();`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Close closes the connection pool
func (c *Client) Close() error {
	c.pool.Close()
	return nil
}
