// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"github.com/stevedylandev/wholenote-server/core/domain"
)

// ThumbnailColorService extracts the prominent color of a preview image
type ThumbnailColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
	GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

// TokenProvider yields a bearer token for the shared upstream credential
type TokenProvider interface {
	GetToken(ctx context.Context, clientID, clientSecret string, store CredentialStore) (string, error)
}

// MediaLookup resolves preview metadata for a media resource
type MediaLookup interface {
	LookupMedia(ctx context.Context, kind domain.ResourceKind, id, token string) domain.MediaPreview
}
