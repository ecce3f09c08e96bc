// ABOUTME: Resource reference model for Spotify media links
// ABOUTME: Resolves a reference string into kind and id without ever failing

package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/samber/lo"

	coreerrors "github.com/stevedylandev/wholenote-server/core/errors"
)

// ResourceKind is the category of a media resource
type ResourceKind string

const (
	KindTrack    ResourceKind = "track"
	KindAlbum    ResourceKind = "album"
	KindPlaylist ResourceKind = "playlist"
	KindArtist   ResourceKind = "artist"
	KindShow     ResourceKind = "show"
	KindEpisode  ResourceKind = "episode"
)

// ResourceKinds lists every kind a reference may carry
var ResourceKinds = []ResourceKind{
	KindTrack,
	KindAlbum,
	KindPlaylist,
	KindArtist,
	KindShow,
	KindEpisode,
}

const (
	embedBaseURL = "https://open.spotify.com/embed"

	// LinkHost is the only host accepted by ValidateLink
	LinkHost = "open.spotify.com"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ResourceReference is the structured form of an inbound media link
type ResourceReference struct {
	Kind  ResourceKind `json:"kind"`
	ID    string       `json:"id"`
	Valid bool         `json:"valid"`
}

// ResolveReference extracts kind and id from a reference such as
// https://open.spotify.com/track/abc123?si=xyz. Kind and id are the first two
// non-empty path segments, split before percent-decoding. Anything that does
// not fit yields an invalid reference.
func ResolveReference(reference string) ResourceReference {
	parsed, err := url.Parse(reference)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ResourceReference{}
	}

	segments := lo.Compact(strings.Split(parsed.EscapedPath(), "/"))
	if len(segments) < 2 {
		return ResourceReference{}
	}

	kind, err := url.PathUnescape(segments[0])
	if err != nil {
		return ResourceReference{}
	}
	id, err := url.PathUnescape(segments[1])
	if err != nil {
		return ResourceReference{}
	}
	id, _, _ = strings.Cut(id, "?")

	return ResourceReference{
		Kind:  ResourceKind(kind),
		ID:    id,
		Valid: true,
	}
}

// ValidateLink resolves reference and accepts it only as an https link on
// LinkHost whose resolved reference passes Validate.
func ValidateLink(reference string) (ResourceReference, error) {
	ref := ResolveReference(reference)

	parsed, err := url.Parse(reference)
	if err != nil || parsed.Scheme != "https" || !strings.EqualFold(parsed.Hostname(), LinkHost) || parsed.Port() != "" {
		return ref, &coreerrors.ValidationError{Field: "url", Message: "reference is not an " + LinkHost + " link"}
	}
	return ref, ref.Validate()
}

// IsKnownKind reports whether kind belongs to the closed set of resource kinds
func IsKnownKind(kind ResourceKind) bool {
	return lo.Contains(ResourceKinds, kind)
}

// Validate checks that a resolved reference can be used for a lookup
func (r ResourceReference) Validate() error {
	if !r.Valid {
		return &coreerrors.ValidationError{Field: "url", Message: "reference could not be resolved"}
	}
	if !IsKnownKind(r.Kind) {
		return &coreerrors.ValidationError{Field: "url", Message: fmt.Sprintf("unsupported resource kind %q", r.Kind)}
	}
	if r.ID == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "resource id is empty"}
	}
	if !idPattern.MatchString(r.ID) {
		return &coreerrors.ValidationError{Field: "url", Message: fmt.Sprintf("resource id %q is not alphanumeric", r.ID)}
	}
	return nil
}

// EmbedURL returns the player URL for the referenced resource
func (r ResourceReference) EmbedURL() string {
	return fmt.Sprintf("%s/%s/%s", embedBaseURL, r.Kind, url.PathEscape(r.ID))
}
