// ABOUTME: Embed preview models returned by the preview pipeline
// ABOUTME: Includes the media metadata and the prominent color of its image

package domain

import "fmt"

// MediaPreview is the preview metadata decoded from the media API.
// The zero value means no preview is available.
type MediaPreview struct {
	ImageURL string
	Title    string
}

// IsEmpty reports whether the lookup produced no image
func (m MediaPreview) IsEmpty() bool {
	return m.ImageURL == ""
}

// EmbedPreview is everything needed to render a link preview for a reference
type EmbedPreview struct {
	Kind          ResourceKind
	ID            string
	SourceURL     string
	EmbedURL      string
	ImageURL      string
	Title         string
	ThemeColor    *RGBColor
	FallbackImage bool
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex formats the color as #rrggbb
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
