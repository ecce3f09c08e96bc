package sqlite

import "sync"

type logEntry struct {
	msg    string
	fields map[string]interface{}
}

// MockLogger records warnings
type MockLogger struct {
	mu       sync.Mutex
	warnings []logEntry
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *MockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *MockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, logEntry{msg: msg, fields: fields})
}

func (m *MockLogger) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = nil
}

func (m *MockLogger) patterns() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]bool{}
	for _, w := range m.warnings {
		if p, ok := w.fields["pattern"].(string); ok {
			out[p] = true
		}
	}
	return out
}
