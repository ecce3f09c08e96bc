package embed

import (
	"context"

	"github.com/samber/mo"

	"github.com/stevedylandev/wholenote-server/core/domain"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

// mockTokenProvider is a mock implementation of the TokenProvider interface
type mockTokenProvider struct {
	calls        int
	getTokenFunc func(ctx context.Context, clientID, clientSecret string, store interfaces.CredentialStore) (string, error)
}

func (m *mockTokenProvider) GetToken(ctx context.Context, clientID, clientSecret string, store interfaces.CredentialStore) (string, error) {
	m.calls++
	if m.getTokenFunc != nil {
		return m.getTokenFunc(ctx, clientID, clientSecret, store)
	}
	return "token", nil
}

// mockMediaLookup is a mock implementation of the MediaLookup interface
type mockMediaLookup struct {
	calls      int
	lookupFunc func(ctx context.Context, kind domain.ResourceKind, id, token string) domain.MediaPreview
}

func (m *mockMediaLookup) LookupMedia(ctx context.Context, kind domain.ResourceKind, id, token string) domain.MediaPreview {
	m.calls++
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, kind, id, token)
	}
	return domain.MediaPreview{}
}

// mockColorService is a mock implementation of the ThumbnailColorService interface
type mockColorService struct {
	extractFunc func(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

func (m *mockColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, imageURL)
	}
	return &domain.RGBColor{R: 128, G: 128, B: 128}, nil
}

func (m *mockColorService) GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	return nil, interfaces.ErrCacheMiss
}

// emptyStore never holds a credential
type emptyStore struct{}

func (emptyStore) Read(ctx context.Context) (mo.Option[domain.CachedCredential], error) {
	return mo.None[domain.CachedCredential](), nil
}

func (emptyStore) Write(ctx context.Context, cred domain.CachedCredential) error {
	return nil
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
