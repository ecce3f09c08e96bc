// ABOUTME: Embed handler for the Huma API
// ABOUTME: Returns preview metadata for a Spotify link

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/stevedylandev/wholenote-server/api/dto/mappers"
	"github.com/stevedylandev/wholenote-server/api/dto/requests"
	"github.com/stevedylandev/wholenote-server/api/dto/responses"
	"github.com/stevedylandev/wholenote-server/core/domain"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

const embedErrorMessage = "Problem fetching preview"

// EmbedService interface defines the methods needed from the embed service
type EmbedService interface {
	Preview(ctx context.Context, reference string) (*domain.EmbedPreview, error)
}

// EmbedHandler handles embed preview requests
type EmbedHandler struct {
	embedService EmbedService
	logger       interfaces.Logger
}

// NewEmbedHandler creates a new embed handler
func NewEmbedHandler(embedService EmbedService, logger interfaces.Logger) *EmbedHandler {
	return &EmbedHandler{
		embedService: embedService,
		logger:       logger,
	}
}

// RegisterRoutes registers the embed route
func (h *EmbedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getEmbed",
		Method:      http.MethodGet,
		Path:        "/embed",
		Summary:     "Preview a Spotify link",
		Description: "Resolves a Spotify link and returns its embed URL, artwork and title",
		Tags:        []string{"Embed"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.GetEmbed)
}

// GetEmbedInput defines the input for the GetEmbed operation
type GetEmbedInput struct {
	requests.EmbedQuery
}

// GetEmbedOutput defines the output for the GetEmbed operation
type GetEmbedOutput struct {
	Body responses.EmbedResponse
}

// GetEmbed handles the GET /embed endpoint
func (h *EmbedHandler) GetEmbed(ctx context.Context, input *GetEmbedInput) (*GetEmbedOutput, error) {
	preview, err := h.embedService.Preview(ctx, input.Reference())
	if err != nil {
		logFailure(h.logger, "embed", err)
		return nil, toHumaError(err, embedErrorMessage)
	}

	response := mappers.ToEmbedResponse(preview)
	if response == nil {
		return nil, huma.Error500InternalServerError(embedErrorMessage)
	}

	return &GetEmbedOutput{Body: *response}, nil
}
