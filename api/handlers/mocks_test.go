package handlers

import (
	"context"
	"sync"

	"github.com/stevedylandev/wholenote-server/core/domain"
)

// mockFeedService is a mock implementation of the feed service
type mockFeedService struct {
	latestFunc func(ctx context.Context, limit int, cursor string) (*domain.FeedPage, error)
}

func (m *mockFeedService) Latest(ctx context.Context, limit int, cursor string) (*domain.FeedPage, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, limit, cursor)
	}
	return &domain.FeedPage{}, nil
}

// mockEmbedService is a mock implementation of the embed service
type mockEmbedService struct {
	previewFunc func(ctx context.Context, reference string) (*domain.EmbedPreview, error)
}

func (m *mockEmbedService) Preview(ctx context.Context, reference string) (*domain.EmbedPreview, error) {
	if m.previewFunc != nil {
		return m.previewFunc(ctx, reference)
	}
	return nil, nil
}

type logEntry struct {
	msg    string
	fields map[string]interface{}
}

// mockLogger records error logs
type mockLogger struct {
	mu     sync.Mutex
	errors []logEntry
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, logEntry{msg: msg, fields: fields})
}
