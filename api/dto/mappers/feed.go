// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"encoding/json"

	"github.com/samber/lo"

	"github.com/stevedylandev/wholenote-server/api/dto/responses"
	"github.com/stevedylandev/wholenote-server/core/domain"
)

// ToFeedResponse converts a merged page to its response DTO.
// Casts without a raw payload are skipped.
func ToFeedResponse(page *domain.FeedPage) *responses.FeedResponse {
	if page == nil {
		return &responses.FeedResponse{Casts: []json.RawMessage{}}
	}

	casts := lo.FilterMap(page.Casts, func(c domain.Cast, _ int) (json.RawMessage, bool) {
		return c.Raw, len(c.Raw) > 0
	})

	response := &responses.FeedResponse{Casts: casts}
	if page.NextCursor != "" {
		response.Next = &responses.NextCursor{Cursor: page.NextCursor}
	}
	return response
}

// ToEmbedResponse converts an embed preview to its response DTO
func ToEmbedResponse(preview *domain.EmbedPreview) *responses.EmbedResponse {
	if preview == nil {
		return nil
	}

	response := &responses.EmbedResponse{
		Type:          string(preview.Kind),
		ID:            preview.ID,
		URL:           preview.SourceURL,
		EmbedURL:      preview.EmbedURL,
		Image:         preview.ImageURL,
		Title:         preview.Title,
		FallbackImage: preview.FallbackImage,
	}
	if preview.ThemeColor != nil {
		response.ThemeColor = preview.ThemeColor.Hex()
	}
	return response
}
