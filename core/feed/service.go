// ABOUTME: Feed service merges two filtered social feed queries into one page
// ABOUTME: Runs both upstream queries concurrently and fails the merge if either fails

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/stevedylandev/wholenote-server/core/domain"
	coreerrors "github.com/stevedylandev/wholenote-server/core/errors"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

const (
	// DefaultBaseURL is the Neynar v2 API root
	DefaultBaseURL = "https://api.neynar.com/v2"

	neynarAPI = "neynar"
)

// Config holds the upstream settings used by Latest
type Config struct {
	BaseURL string
	APIKey  string
	FilterA string
	FilterB string
}

// MergeRequest describes one merge of two filtered queries
type MergeRequest struct {
	Limit   int
	FilterA string
	FilterB string
	Cursor  string
	Headers map[string]string
}

// upstreamPage is the feed envelope. Some responses use items instead of casts.
type upstreamPage struct {
	Casts []domain.Cast `json:"casts"`
	Items []domain.Cast `json:"items"`
	Next  struct {
		Cursor string `json:"cursor"`
	} `json:"next"`
}

func (p upstreamPage) casts() []domain.Cast {
	if p.Casts != nil {
		return p.Casts
	}
	return p.Items
}

// FeedService handles merging of the social feed queries
type FeedService struct {
	deps    interfaces.Dependencies
	config  Config
	baseURL string
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, config Config) *FeedService {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &FeedService{
		deps:    deps,
		config:  config,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Headers returns the request headers for the configured API key
func (s *FeedService) Headers() map[string]string {
	return map[string]string{
		"accept":                "application/json",
		"x-api-key":             s.config.APIKey,
		"x-neynar-experimental": "false",
	}
}

// Latest merges the two configured filters
func (s *FeedService) Latest(ctx context.Context, limit int, cursor string) (*domain.FeedPage, error) {
	return s.MergeFeeds(ctx, MergeRequest{
		Limit:   limit,
		FilterA: s.config.FilterA,
		FilterB: s.config.FilterB,
		Cursor:  cursor,
		Headers: s.Headers(),
	})
}

// MergeFeeds queries both filters concurrently and returns the newest casts of
// the combined results. If either query fails, the other is cancelled and no
// partial page is returned.
func (s *FeedService) MergeFeeds(ctx context.Context, req MergeRequest) (*domain.FeedPage, error) {
	limit := NormalizeLimit(req.Limit)

	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.ExternalAPIError{API: neynarAPI, Message: "HTTP client not configured"}
	}

	perQuery := UpstreamLimit(limit)

	var pageA, pageB *upstreamPage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := s.fetch(gctx, req.FilterA, perQuery, req.Cursor, req.Headers)
		pageA = page
		return err
	})
	g.Go(func() error {
		page, err := s.fetch(gctx, req.FilterB, perQuery, req.Cursor, req.Headers)
		pageB = page
		return err
	})

	if err := g.Wait(); err != nil {
		s.deps.Logger.Error("Feed merge failed", map[string]interface{}{
			"filter_a": req.FilterA,
			"filter_b": req.FilterB,
			"error":    err.Error(),
		})
		return nil, err
	}

	casts := MergeCasts(limit, pageA.casts(), pageB.casts())

	s.deps.Logger.Debug("Merged feeds", map[string]interface{}{
		"count_a": len(pageA.casts()),
		"count_b": len(pageB.casts()),
		"merged":  len(casts),
		"limit":   limit,
	})

	return &domain.FeedPage{
		Casts:      casts,
		NextCursor: NextCursor(pageA.Next.Cursor, pageB.Next.Cursor),
	}, nil
}

// buildURL returns the filtered feed query for one embed filter
func (s *FeedService) buildURL(filter string, limit int, cursor string) string {
	q := url.Values{}
	q.Set("feed_type", "filter")
	q.Set("filter_type", "embed_url")
	q.Set("embed_url", filter)
	q.Set("with_recasts", "false")
	q.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	return fmt.Sprintf("%s/farcaster/feed?%s", s.baseURL, q.Encode())
}

func (s *FeedService) fetch(ctx context.Context, filter string, limit int, cursor string, headers map[string]string) (*upstreamPage, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, s.buildURL(filter, limit, cursor), headers)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: neynarAPI, Message: "request for " + filter + " failed", Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ExternalAPIError{
			API:        neynarAPI,
			StatusCode: resp.StatusCode(),
			Message:    "feed query for " + filter + " rejected",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API: neynarAPI, StatusCode: resp.StatusCode(), Message: "failed to read response", Err: err,
		}
	}

	var page upstreamPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API: neynarAPI, StatusCode: resp.StatusCode(), Message: "invalid feed response", Err: err,
		}
	}
	return &page, nil
}
