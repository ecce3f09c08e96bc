// ABOUTME: Credential store keeps the single shared access token in the cache backend
// ABOUTME: Separates a missing record from a failing backend

package credentials

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/samber/mo"

	"github.com/stevedylandev/wholenote-server/core/domain"
	coreerrors "github.com/stevedylandev/wholenote-server/core/errors"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

// DefaultKey is the well-known key the credential is stored under
const DefaultKey = "spotify_token"

// Store implements interfaces.CredentialStore over an interfaces.Cache
type Store struct {
	deps interfaces.Dependencies
	key  string
}

// NewStore creates a credential store. An empty key selects DefaultKey.
func NewStore(deps interfaces.Dependencies, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{deps: deps, key: key}
}

// Key returns the cache key holding the credential
func (s *Store) Key() string {
	return s.key
}

// Read loads the stored credential. A miss or an undecodable record is mo.None.
func (s *Store) Read(ctx context.Context) (mo.Option[domain.CachedCredential], error) {
	if s.deps.Cache == nil {
		return mo.None[domain.CachedCredential](), &coreerrors.StorageError{
			Op: "read", Key: s.key, Err: errors.New("cache not configured"),
		}
	}

	data, err := s.deps.Cache.Get(ctx, s.key)
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return mo.None[domain.CachedCredential](), nil
	}
	if err != nil {
		return mo.None[domain.CachedCredential](), &coreerrors.StorageError{Op: "read", Key: s.key, Err: err}
	}

	var cred domain.CachedCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		s.deps.Logger.Warn("Discarding unreadable stored credential", map[string]interface{}{
			"key":   s.key,
			"error": err.Error(),
		})
		return mo.None[domain.CachedCredential](), nil
	}

	return mo.Some(cred), nil
}

// Write overwrites the stored credential. The record carries its own expiry,
// so the backend entry never expires.
func (s *Store) Write(ctx context.Context, cred domain.CachedCredential) error {
	if s.deps.Cache == nil {
		return &coreerrors.StorageError{Op: "write", Key: s.key, Err: errors.New("cache not configured")}
	}

	data, err := json.Marshal(cred)
	if err != nil {
		return &coreerrors.StorageError{Op: "write", Key: s.key, Err: err}
	}

	if err := s.deps.Cache.Set(ctx, s.key, data, 0); err != nil {
		return &coreerrors.StorageError{Op: "write", Key: s.key, Err: err}
	}
	return nil
}
