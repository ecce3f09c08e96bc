// ABOUTME: Thumbnail color extraction service for extracting prominent colors from images
// ABOUTME: Uses K-means clustering to find the most prominent color in preview artwork

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"

	"github.com/stevedylandev/wholenote-server/core/domain"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

const (
	defaultColorValue = 128
	colorCacheTTL     = 24 * time.Hour
	userAgent         = "Mozilla/5.0 (compatible; WholenotePreview/1.0)"
)

// ThumbnailColorService handles color extraction from images
type ThumbnailColorService struct {
	deps interfaces.Dependencies
}

// NewThumbnailColorService creates a new thumbnail color service
func NewThumbnailColorService(deps interfaces.Dependencies) *ThumbnailColorService {
	return &ThumbnailColorService{
		deps: deps,
	}
}

func cacheKey(imageURL string) string {
	return "themeColor:" + imageURL
}

// ExtractColor extracts the prominent color from an image URL.
// Any failure yields the default gray; the error return is always nil.
func (s *ThumbnailColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	if color, err := s.GetCachedColor(ctx, imageURL); err == nil {
		return color, nil
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract color from thumbnail", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}

	if color == nil {
		color = s.defaultColor()
	}

	if s.deps.Cache != nil {
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		if err := s.deps.Cache.Set(ctx, cacheKey(imageURL), []byte(cacheData), colorCacheTTL); err != nil {
			s.deps.Logger.Warn("Failed to cache thumbnail color", map[string]interface{}{
				"url":   imageURL,
				"error": err.Error(),
			})
		}
	}

	return color, nil
}

// extractColorFromURL downloads and extracts color from image
func (s *ThumbnailColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG can't be decoded as a raster image
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, imageURL, map[string]string{"User-Agent": userAgent})
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	img, _, err := image.Decode(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	// Try to extract color with masks first
	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.DefaultK,
		imgNRGBA,
		prominentcolor.ArgumentNoCropping,
		prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks(),
	)

	// Mostly white or black artwork is fully masked; retry without masks
	if err != nil || len(colors) == 0 {
		s.deps.Logger.Debug("Retrying color extraction without masks", map[string]interface{}{
			"url":   imageURL,
			"error": err,
		})

		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.DefaultK,
			imgNRGBA,
			prominentcolor.ArgumentNoCropping,
			prominentcolor.DefaultSize,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns the default gray color
func (s *ThumbnailColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}

// GetCachedColor retrieves a color from cache without computing it
func (s *ThumbnailColorService) GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("empty image URL")
	}
	if s.deps.Cache == nil {
		return nil, fmt.Errorf("cache not configured")
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(imageURL))
	if err != nil {
		return nil, err
	}

	var color domain.RGBColor
	// Format is "R,G,B"
	if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err != nil {
		return nil, fmt.Errorf("malformed cached color %q: %w", data, err)
	}
	return &color, nil
}
