// ABOUTME: Request DTOs for the feed and embed endpoints
// ABOUTME: Query parameters are taken as strings so malformed values fall back to defaults

package requests

import (
	"strings"

	"github.com/stevedylandev/wholenote-server/pkg/utils/parse"
)

// FeedQuery holds the query parameters of GET /feed
type FeedQuery struct {
	// Limit is the requested page size. Missing or non-numeric means the default.
	Limit string `query:"limit" doc:"Maximum number of casts to return (default 25)" example:"25"`

	// Cursor is the opaque cursor returned by the previous page
	Cursor string `query:"cursor" doc:"Cursor from the previous page"`
}

// PageLimit returns the parsed limit, 0 when absent or malformed
func (q FeedQuery) PageLimit() int {
	return parse.IntOrDefault(q.Limit, 0)
}

// EmbedQuery holds the query parameters of GET /embed
type EmbedQuery struct {
	// URL is the Spotify link to preview
	URL string `query:"url" doc:"Spotify link to preview" example:"https://open.spotify.com/track/4PTG3Z6ehGkBFwjybzWkR8"`
}

// Reference returns the trimmed reference
func (q EmbedQuery) Reference() string {
	return strings.TrimSpace(q.URL)
}
