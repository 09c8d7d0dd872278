package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newMapGetter builds a dotted-path getter for nested map-based test configuration.
func newMapGetter(root map[string]any) Getter {
	return func(key string) any {
		var current any = root
		for _, part := range strings.Split(key, ".") {
			next, ok := current.(map[string]any)
			if !ok {
				return nil
			}
			if current, ok = next[part]; !ok {
				return nil
			}
		}
		return current
	}
}

func noEnv(string) string { return "" }

func TestLoadSettingsDefaults(t *testing.T) {
	settings := LoadSettingsWithGetter(newMapGetter(map[string]any{}), noEnv)

	require.Equal(t, "https://api.openweathermap.org/data/2.5/weather", settings.Weather.Endpoint)
	require.Equal(t, "metric", settings.Weather.Units)
	require.Equal(t, 10*time.Second, settings.Weather.Timeout)
	require.Equal(t, "zh-TW", settings.UI.Language)
	require.True(t, settings.Lookup.DiscardStale)
	require.Empty(t, settings.Weather.APIKey)
}

func TestLoadSettingsExplicit(t *testing.T) {
	cfg := map[string]any{
		"settings": map[string]any{
			"weather": map[string]any{
				"api_key":    " file-key ",
				"endpoint":   "http://localhost:9000/weather",
				"units":      "imperial",
				"timeout_ms": 0,
			},
			"ui":     map[string]any{"language": "en"},
			"lookup": map[string]any{"discard_stale": false},
		},
	}

	settings := LoadSettingsWithGetter(newMapGetter(cfg), noEnv)

	require.Equal(t, "file-key", settings.Weather.APIKey)
	require.Equal(t, "http://localhost:9000/weather", settings.Weather.Endpoint)
	require.Equal(t, "imperial", settings.Weather.Units)
	require.Zero(t, settings.Weather.Timeout)
	require.Equal(t, "en", settings.UI.Language)
	require.False(t, settings.Lookup.DiscardStale)
}

func TestLoadSettingsLangFlagOverridesFile(t *testing.T) {
	cfg := map[string]any{
		"lang":     "en",
		"settings": map[string]any{"ui": map[string]any{"language": "zh-TW"}},
	}

	settings := LoadSettingsWithGetter(newMapGetter(cfg), noEnv)
	require.Equal(t, "en", settings.UI.Language)
}

func TestResolveAPIKeyOrder(t *testing.T) {
	env := func(key string) string {
		if key == APIKeyEnv {
			return "env-key"
		}
		return ""
	}

	original := BuildAPIKey
	BuildAPIKey = "build-key"
	t.Cleanup(func() { BuildAPIKey = original })

	require.Equal(t, "build-key", resolveAPIKey(newMapGetter(map[string]any{}), noEnv))
	require.Equal(t, "env-key", resolveAPIKey(newMapGetter(map[string]any{}), env))
	require.Equal(t, "flag-key", resolveAPIKey(newMapGetter(map[string]any{"api-key": "flag-key"}), env))
	require.Equal(t, "file-key", resolveAPIKey(newMapGetter(map[string]any{
		"api-key": "flag-key",
		"settings": map[string]any{
			"weather": map[string]any{"api_key": "file-key"},
		},
	}), env))
}

func TestIntFromConfig(t *testing.T) {
	get := newMapGetter(map[string]any{"a": "250", "b": 2.0, "c": "nope"})

	require.Equal(t, 250, intFromConfig(get, "a", 1))
	require.Equal(t, 2, intFromConfig(get, "b", 1))
	require.Equal(t, 1, intFromConfig(get, "c", 1))
	require.Equal(t, 1, intFromConfig(get, "missing", 1))
}
