package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"github.com/stevedylandev/wholenote-server/core/domain"
	coreerrors "github.com/stevedylandev/wholenote-server/core/errors"
)

func TestEmbedHandler_GetEmbed_Success(t *testing.T) {
	var gotReference string
	service := &mockEmbedService{
		previewFunc: func(ctx context.Context, reference string) (*domain.EmbedPreview, error) {
			gotReference = reference
			return &domain.EmbedPreview{
				Kind:       domain.KindTrack,
				ID:         "abc123",
				SourceURL:  reference,
				EmbedURL:   "https://open.spotify.com/embed/track/abc123",
				ImageURL:   "https://i.scdn.co/image/abc",
				Title:      "Get Lucky",
				ThemeColor: &domain.RGBColor{R: 255, G: 0, B: 16},
			}, nil
		},
	}

	_, api := humatest.New(t)
	NewEmbedHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/embed?url=https%3A%2F%2Fopen.spotify.com%2Ftrack%2Fabc123%3Fsi%3Dxyz")

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if gotReference != "https://open.spotify.com/track/abc123?si=xyz" {
		t.Errorf("reference = %q", gotReference)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := map[string]interface{}{
		"type":           "track",
		"id":             "abc123",
		"embed_url":      "https://open.spotify.com/embed/track/abc123",
		"image":          "https://i.scdn.co/image/abc",
		"title":          "Get Lucky",
		"theme_color":    "#ff0010",
		"fallback_image": false,
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("%s = %v, want %v", k, body[k], v)
		}
	}
}

func TestEmbedHandler_GetEmbed_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantLogged  bool
	}{
		{
			name:        "missing url",
			err:         &coreerrors.ValidationError{Field: "url", Message: "url parameter is required"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "url parameter is required",
		},
		{
			name:        "invalid url",
			err:         &coreerrors.ValidationError{Field: "url", Message: "Invalid Spotify URL"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid Spotify URL",
		},
		{
			name:        "token exchange failed",
			err:         &coreerrors.ExternalAPIError{API: "spotify-accounts", StatusCode: 401},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Problem fetching preview",
			wantLogged:  true,
		},
		{
			name:        "credential store failed",
			err:         &coreerrors.StorageError{Op: "read", Key: "spotify_token", Err: errors.New("connection refused")},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Problem fetching preview",
			wantLogged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockEmbedService{
				previewFunc: func(ctx context.Context, reference string) (*domain.EmbedPreview, error) {
					return nil, tt.err
				},
			}
			logger := &mockLogger{}

			_, api := humatest.New(t)
			NewEmbedHandler(service, logger).RegisterRoutes(api)

			resp := api.Get("/embed?url=not-a-url")

			if resp.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.Code, tt.wantStatus)
			}

			var body map[string]interface{}
			json.Unmarshal(resp.Body.Bytes(), &body)
			if body["error"] != tt.wantMessage {
				t.Errorf("error = %v, want %q", body["error"], tt.wantMessage)
			}
			if got := len(logger.errors) > 0; got != tt.wantLogged {
				t.Errorf("logged = %v, want %v", got, tt.wantLogged)
			}
		})
	}
}

func TestEmbedHandler_GetEmbed_NilPreview(t *testing.T) {
	_, api := humatest.New(t)
	NewEmbedHandler(&mockEmbedService{}, nil).RegisterRoutes(api)

	resp := api.Get("/embed?url=https://open.spotify.com/track/abc123")

	if resp.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.Code)
	}
}

func TestRegisterHealthRoutes(t *testing.T) {
	_, api := humatest.New(t)
	RegisterHealthRoutes(api)

	resp := api.Get("/health")

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}
