// ABOUTME: Feed handler for the Huma API
// ABOUTME: Serves the merged, newest-first page of casts that embed Spotify links

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

const feedErrorMessage = "Problem fetching feed"

// FeedService interface defines the methods needed from the feed service
type FeedService interface {
	Latest(ctx context.Context, limit int, cursor string) (*domain.FeedPage, error)
}

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService FeedService
	logger      interfaces.Logger
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService FeedService, logger interfaces.Logger) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		logger:      logger,
	}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getFeed",
		Method:      http.MethodGet,
		Path:        "/feed",
		Summary:     "Latest casts sharing Spotify links",
		Description: "Merges the newest casts embedding open.spotify.com and spotify.link links, newest first",
		Tags:        []string{"Feed"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetFeed)
}

// GetFeedInput defines the input for the GetFeed operation
type GetFeedInput struct {
	requests.FeedQuery
}

// GetFeedOutput defines the output for the GetFeed operation
type GetFeedOutput struct {
	Body responses.FeedResponse
}

// GetFeed handles the GET /feed endpoint
func (h *FeedHandler) GetFeed(ctx context.Context, input *GetFeedInput) (*GetFeedOutput, error) {
	page, err := h.feedService.Latest(ctx, input.PageLimit(), input.Cursor)
	if err != nil {
		logFailure(h.logger, "feed", err)
		return nil, toHumaError(err, feedErrorMessage)
	}

	return &GetFeedOutput{
		Body: *mappers.ToFeedResponse(page),
	}, nil
}
