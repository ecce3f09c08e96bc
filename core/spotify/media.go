// ABOUTME: Media lookup fetches preview metadata for a Spotify resource
// ABOUTME: Every failure yields an empty preview; the cause is logged with a reason

package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/stevedylandev/wholenote-server/core/domain"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

// DefaultAPIBaseURL is the Spotify Web API root
const DefaultAPIBaseURL = "https://api.spotify.com/v1"

type image struct {
	URL    string `json:"url"`
	Height *int   `json:"height"`
	Width  *int   `json:"width"`
}

type trackResponse struct {
	Name  string `json:"name"`
	Album struct {
		Images []image `json:"images"`
	} `json:"album"`
}

type collectionResponse struct {
	Name   string  `json:"name"`
	Images []image `json:"images"`
}

// decoder turns a media API body into a preview
type decoder func(body []byte) (domain.MediaPreview, error)

func decodeTrack(body []byte) (domain.MediaPreview, error) {
	var resp trackResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.MediaPreview{}, err
	}
	return domain.MediaPreview{ImageURL: firstImage(resp.Album.Images), Title: resp.Name}, nil
}

func decodeCollection(body []byte) (domain.MediaPreview, error) {
	var resp collectionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.MediaPreview{}, err
	}
	return domain.MediaPreview{ImageURL: firstImage(resp.Images), Title: resp.Name}, nil
}

func firstImage(images []image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// MediaLookup resolves preview images through the Spotify Web API
type MediaLookup struct {
	deps     interfaces.Dependencies
	baseURL  string
	decoders map[domain.ResourceKind]decoder
}

// NewMediaLookup creates a media lookup. An empty baseURL selects DefaultAPIBaseURL.
func NewMediaLookup(deps interfaces.Dependencies, baseURL string) *MediaLookup {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &MediaLookup{
		deps:    deps,
		baseURL: strings.TrimRight(baseURL, "/"),
		decoders: map[domain.ResourceKind]decoder{
			domain.KindTrack:    decodeTrack,
			domain.KindAlbum:    decodeCollection,
			domain.KindPlaylist: decodeCollection,
			domain.KindArtist:   decodeCollection,
		},
	}
}

// Supports reports whether previews can be looked up for kind
func (l *MediaLookup) Supports(kind domain.ResourceKind) bool {
	_, ok := l.decoders[kind]
	return ok
}

// GetPreviewAsset returns the preview image URL, or "" when none is available
func (l *MediaLookup) GetPreviewAsset(ctx context.Context, kind domain.ResourceKind, id, token string) string {
	return l.LookupMedia(ctx, kind, id, token).ImageURL
}

// LookupMedia returns the preview image and title for a resource.
// Unsupported kinds return the zero preview without a request.
func (l *MediaLookup) LookupMedia(ctx context.Context, kind domain.ResourceKind, id, token string) domain.MediaPreview {
	decode, ok := l.decoders[kind]
	if !ok {
		l.unavailable("unsupported_kind", kind, id, nil)
		return domain.MediaPreview{}
	}
	if l.deps.HTTPClient == nil {
		l.unavailable("no_http_client", kind, id, nil)
		return domain.MediaPreview{}
	}

	endpoint := fmt.Sprintf("%s/%ss/%s", l.baseURL, kind, url.PathEscape(id))
	resp, err := l.deps.HTTPClient.Get(ctx, endpoint, map[string]string{
		"Authorization": "Bearer " + token,
		"Accept":        "application/json",
	})
	if err != nil {
		l.unavailable("request_failed", kind, id, map[string]interface{}{"error": err.Error()})
		return domain.MediaPreview{}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		l.unavailable("upstream_status", kind, id, map[string]interface{}{"status": resp.StatusCode()})
		return domain.MediaPreview{}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		l.unavailable("read_failed", kind, id, map[string]interface{}{"error": err.Error()})
		return domain.MediaPreview{}
	}

	preview, err := decode(body)
	if err != nil {
		l.unavailable("decode_failed", kind, id, map[string]interface{}{"error": err.Error()})
		return domain.MediaPreview{}
	}
	if preview.IsEmpty() {
		l.unavailable("no_images", kind, id, nil)
	}

	return preview
}

func (l *MediaLookup) unavailable(reason string, kind domain.ResourceKind, id string, extra map[string]interface{}) {
	l.deps.Logger.Warn("Preview unavailable", lo.Assign(map[string]interface{}{
		"reason": reason,
		"kind":   string(kind),
		"id":     id,
	}, extra))
}
