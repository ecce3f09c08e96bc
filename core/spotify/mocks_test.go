package spotify

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/samber/mo"

	"github.com/stevedylandev/wholenote-server/core/domain"
	"github.com/stevedylandev/wholenote-server/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu       sync.Mutex
	calls    int
	getFunc  func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
	postFunc func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	m.count()
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	m.count()
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body, headers)
	}
	return nil, nil
}

func (m *mockHTTPClient) count() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
}

func (m *mockHTTPClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockStore is an in-memory CredentialStore
type mockStore struct {
	cred     mo.Option[domain.CachedCredential]
	readErr  error
	writeErr error
	writes   int
}

func (m *mockStore) Read(ctx context.Context) (mo.Option[domain.CachedCredential], error) {
	if m.readErr != nil {
		return mo.None[domain.CachedCredential](), m.readErr
	}
	return m.cred, nil
}

func (m *mockStore) Write(ctx context.Context, cred domain.CachedCredential) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.cred = mo.Some(cred)
	return nil
}

// mockLogger records warn fields so tests can check failure reasons
type mockLogger struct {
	mu    sync.Mutex
	warns []map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fields)
}

func (m *mockLogger) lastReason() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.warns) == 0 {
		return ""
	}
	reason, _ := m.warns[len(m.warns)-1]["reason"].(string)
	return reason
}
