// ABOUTME: Response DTOs for the feed, embed and health endpoints
// ABOUTME: Casts are passed through as the raw upstream JSON

package responses

import "encoding/json"

// FeedResponse is one merged page of casts
type FeedResponse struct {
	Casts []json.RawMessage `json:"casts" doc:"Casts as returned by the upstream feed API, newest first"`
	Next  *NextCursor       `json:"next,omitempty" doc:"Present when more casts are available"`
}

// NextCursor carries the cursor for the following page
type NextCursor struct {
	Cursor string `json:"cursor" doc:"Opaque cursor to pass as ?cursor="`
}

// EmbedResponse is the preview metadata for a Spotify link
type EmbedResponse struct {
	Type          string `json:"type" doc:"Resource kind" example:"track"`
	ID            string `json:"id" doc:"Resource id" example:"4PTG3Z6ehGkBFwjybzWkR8"`
	URL           string `json:"url" doc:"The link that was resolved"`
	EmbedURL      string `json:"embed_url" doc:"Spotify embed player URL"`
	Image         string `json:"image" doc:"Preview image URL"`
	Title         string `json:"title,omitempty" doc:"Title of the resource when known"`
	ThemeColor    string `json:"theme_color,omitempty" doc:"Prominent color of the image as #rrggbb" example:"#1db954"`
	FallbackImage bool   `json:"fallback_image" doc:"True when no artwork was found and the default image is used"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
