package featureflags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeColor_DisabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, ThemeColorEnabled))
}

func TestThemeColor_EnabledWhenFlagSet(t *testing.T) {
	t.Setenv("TEST_FEATURE_THEME_COLOR", "true")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, ThemeColorEnabled))
}

func TestNewEnvManager_DefaultPrefix(t *testing.T) {
	t.Setenv("FEATURE_RATE_LIMIT", "1")

	manager := NewEnvManager("")

	assert.True(t, manager.IsEnabled(context.Background(), RateLimitEnabled))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"on", "on", true},
		{"padded", " true ", true},
		{"false", "false", false},
		{"0", "0", false},
		{"empty", "", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_FLAG", tt.value)

			manager := NewEnvManager("TEST_")
			ctx := context.Background()

			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, "FLAG"))
		})
	}
}

func TestEnvManager_SetEnabled(t *testing.T) {
	manager := NewEnvManager("TEST_")
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, ThemeColorEnabled))

	manager.SetEnabled(ThemeColorEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, ThemeColorEnabled))

	manager.SetEnabled(ThemeColorEnabled, false)
	assert.False(t, manager.IsEnabled(ctx, ThemeColorEnabled))
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	t.Setenv("TEST_FEATURE_RATE_LIMIT", "true")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))

	manager.SetEnabled(RateLimitEnabled, false)

	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	t.Setenv("TEST_FEATURE_THEME_COLOR", "enabled")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.Equal(t, map[FeatureFlag]bool{
		ThemeColorEnabled: true,
		RateLimitEnabled:  false,
	}, manager.GetAllFlags())
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		ThemeColorEnabled: true,
	})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, ThemeColorEnabled))
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled)) // Not in initial map
}

func TestStaticManager_SetEnabled(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))

	manager.SetEnabled(RateLimitEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestStaticManager_GetAllFlagsReturnsCopy(t *testing.T) {
	flags := map[FeatureFlag]bool{
		ThemeColorEnabled: true,
		RateLimitEnabled:  false,
	}

	manager := NewStaticManager(flags)
	allFlags := manager.GetAllFlags()
	assert.Equal(t, flags, allFlags)

	allFlags[RateLimitEnabled] = true
	assert.False(t, manager.IsEnabled(context.Background(), RateLimitEnabled))
}

func TestStaticManager_CopiesInput(t *testing.T) {
	flags := map[FeatureFlag]bool{ThemeColorEnabled: true}
	manager := NewStaticManager(flags)

	flags[ThemeColorEnabled] = false

	assert.True(t, manager.IsEnabled(context.Background(), ThemeColorEnabled))
}

func TestEnvManager_EnvKey(t *testing.T) {
	manager := NewEnvManager("")

	assert.Equal(t, "FEATURE_THEME_COLOR", manager.EnvKey(ThemeColorEnabled))
	assert.Equal(t, "FEATURE_RATE_LIMIT", manager.EnvKey(RateLimitEnabled))
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	done := make(chan bool)

	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				manager.SetEnabled(ThemeColorEnabled, j%2 == 0)
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = manager.IsEnabled(ctx, ThemeColorEnabled)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFeatureFlagNames(t *testing.T) {
	assert.Equal(t, FeatureFlag("theme_color"), ThemeColorEnabled)
	assert.Equal(t, FeatureFlag("rate_limit"), RateLimitEnabled)
}
