// ABOUTME: Feature flags for the optional parts of the request path
// ABOUTME: EnvManager reads FEATURE_* variables; StaticManager is fixed at construction

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// FeatureFlag names one toggle
type FeatureFlag string

const (
	// ThemeColorEnabled adds the prominent image color to embed previews
	ThemeColorEnabled FeatureFlag = "theme_color"

	// RateLimitEnabled turns on per-IP rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit"
)

// AllFlags lists every defined flag
var AllFlags = []FeatureFlag{ThemeColorEnabled, RateLimitEnabled}

// truthy values accepted from the environment, compared lowercased
var truthy = []string{"true", "1", "enabled", "on"}

// Manager answers whether a flag is on
type Manager interface {
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled pins a flag, taking precedence over any other source
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of every flag in AllFlags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager reads flags from prefixed environment variables on every call,
// so flipping a variable takes effect without a restart.
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates an env-backed manager. An empty prefix means FEATURE_.
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// EnvKey returns the variable that controls flag
func (m *EnvManager) EnvKey(flag FeatureFlag) string {
	return m.prefix + strings.ToUpper(string(flag))
}

func (m *EnvManager) IsEnabled(_ context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	enabled, pinned := m.overrides[flag]
	m.mu.RUnlock()
	if pinned {
		return enabled
	}

	value := strings.ToLower(strings.TrimSpace(os.Getenv(m.EnvKey(flag))))
	return lo.Contains(truthy, value)
}

func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	return lo.SliceToMap(AllFlags, func(flag FeatureFlag) (FeatureFlag, bool) {
		return flag, m.IsEnabled(ctx, flag)
	})
}

// StaticManager holds a fixed flag map, mostly for tests
type StaticManager struct {
	mu    sync.RWMutex
	flags map[FeatureFlag]bool
}

// NewStaticManager creates a manager with the given states; missing flags are off
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	return &StaticManager{flags: lo.Assign(flags)}
}

func (m *StaticManager) IsEnabled(_ context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.SliceToMap(AllFlags, func(flag FeatureFlag) (FeatureFlag, bool) {
		return flag, m.flags[flag]
	})
}
