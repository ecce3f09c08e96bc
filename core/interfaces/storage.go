// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines the contract for the single shared upstream credential slot

package interfaces

import (
	"context"

	"github.com/samber/mo"

	"github.com/stevedylandev/wholenote-server/core/domain"
)

// CredentialStore persists exactly one CachedCredential record.
// It does not validate contents; freshness is decided by the caller.
type CredentialStore interface {
	// Read returns the stored credential, or mo.None when nothing is stored.
	// A backend failure is returned as an error, never as mo.None.
	Read(ctx context.Context) (mo.Option[domain.CachedCredential], error)

	// Write overwrites the stored credential.
	Write(ctx context.Context, credential domain.CachedCredential) error
}
