// ABOUTME: Embed service builds a link preview for a Spotify reference
// ABOUTME: Resolves the reference, fetches the shared token and looks up artwork

package embed

import (
	"context"

	"github.com/stevedylandev/wholenote-server/core/domain"
	coreerrors "github.com/stevedylandev/wholenote-server/core/errors"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
	"github.com/stevedylandev/wholenote-server/pkg/featureflags"
)

// DefaultFallbackImage is served when no artwork can be found
const DefaultFallbackImage = "https://wholenote.app/og.png"

// Config holds the client credentials and preview defaults
type Config struct {
	ClientID      string
	ClientSecret  string
	FallbackImage string
}

// Service assembles embed previews
type Service struct {
	deps   interfaces.Dependencies
	config Config
	tokens interfaces.TokenProvider
	store  interfaces.CredentialStore
	media  interfaces.MediaLookup
	colors interfaces.ThumbnailColorService
	flags  featureflags.Manager
}

// NewService creates an embed service. colors and flags may be nil, in which
// case no theme color is computed.
func NewService(
	deps interfaces.Dependencies,
	config Config,
	tokens interfaces.TokenProvider,
	store interfaces.CredentialStore,
	media interfaces.MediaLookup,
	colors interfaces.ThumbnailColorService,
	flags featureflags.Manager,
) *Service {
	if config.FallbackImage == "" {
		config.FallbackImage = DefaultFallbackImage
	}
	return &Service{
		deps:   deps,
		config: config,
		tokens: tokens,
		store:  store,
		media:  media,
		colors: colors,
		flags:  flags,
	}
}

// Resolve parses and validates an inbound reference
func (s *Service) Resolve(reference string) (domain.ResourceReference, error) {
	if reference == "" {
		return domain.ResourceReference{}, &coreerrors.ValidationError{Field: "url", Message: "url parameter is required"}
	}

	ref, err := domain.ValidateLink(reference)
	if err != nil {
		s.deps.Logger.Debug("Rejected reference", map[string]interface{}{
			"reference": reference,
			"error":     err.Error(),
		})
		return ref, &coreerrors.ValidationError{Field: "url", Message: "Invalid Spotify URL"}
	}
	return ref, nil
}

// Preview returns the embed preview for a reference. Missing artwork is not an
// error; token and storage failures are.
func (s *Service) Preview(ctx context.Context, reference string) (*domain.EmbedPreview, error) {
	ref, err := s.Resolve(reference)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GetToken(ctx, s.config.ClientID, s.config.ClientSecret, s.store)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to obtain access token")
	}

	media := s.media.LookupMedia(ctx, ref.Kind, ref.ID, token)

	preview := &domain.EmbedPreview{
		Kind:      ref.Kind,
		ID:        ref.ID,
		SourceURL: reference,
		EmbedURL:  ref.EmbedURL(),
		ImageURL:  media.ImageURL,
		Title:     media.Title,
	}
	if media.IsEmpty() {
		preview.ImageURL = s.config.FallbackImage
		preview.FallbackImage = true
	}

	if s.themeColorEnabled(ctx) {
		// ExtractColor falls back to gray on its own failures
		color, err := s.colors.ExtractColor(ctx, preview.ImageURL)
		if err == nil {
			preview.ThemeColor = color
		}
	}

	s.deps.Logger.Debug("Built embed preview", map[string]interface{}{
		"kind":     string(ref.Kind),
		"id":       ref.ID,
		"fallback": preview.FallbackImage,
	})

	return preview, nil
}

func (s *Service) themeColorEnabled(ctx context.Context) bool {
	return s.colors != nil && s.flags != nil && s.flags.IsEnabled(ctx, featureflags.ThemeColorEnabled)
}
