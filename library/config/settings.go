package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	gconfig "github.com/Laisky/go-config/v2"
)

// BuildAPIKey is the provider key baked in at build time:
//
//	go build -ldflags "-X github.com/Laisky/weather-widget/library/config.BuildAPIKey=..."
var BuildAPIKey string

// APIKeyEnv is the environment variable holding the provider key.
const APIKeyEnv = "WEATHER_API_KEY"

const (
	defaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"
	defaultUnits    = "metric"
	defaultTimeout  = 10 * time.Second
	defaultLanguage = "zh-TW"
)

// Settings captures runtime configuration of the widget.
type Settings struct {
	Weather WeatherSettings
	UI      UISettings
	Lookup  LookupSettings
}

// WeatherSettings configures the provider client.
type WeatherSettings struct {
	APIKey   string
	Endpoint string
	Units    string
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
}

// UISettings configures presentation.
type UISettings struct {
	Language string
}

// LookupSettings configures the query controller.
type LookupSettings struct {
	// DiscardStale drops outcomes of superseded lookups.
	DiscardStale bool
}

// Getter retrieves raw configuration values by dotted key path.
type Getter func(key string) any

// LoadSettings reads the shared configuration and applies defaults.
func LoadSettings() Settings {
	return LoadSettingsWithGetter(gconfig.S.Get, os.Getenv)
}

// LoadSettingsWithGetter reads configuration through get, looking up
// environment variables through getenv, and applies defaults.
func LoadSettingsWithGetter(get Getter, getenv func(string) string) Settings {
	settings := Settings{
		Weather: WeatherSettings{
			APIKey:   resolveAPIKey(get, getenv),
			Endpoint: stringFromConfig(get, "settings.weather.endpoint", defaultEndpoint),
			Units:    stringFromConfig(get, "settings.weather.units", defaultUnits),
			Timeout: time.Duration(intFromConfig(get, "settings.weather.timeout_ms",
				int(defaultTimeout/time.Millisecond))) * time.Millisecond,
		},
		UI: UISettings{
			Language: stringFromConfig(get, "settings.ui.language", defaultLanguage),
		},
		Lookup: LookupSettings{
			DiscardStale: boolFromConfig(get, "settings.lookup.discard_stale", true),
		},
	}

	if lang := stringFromConfig(get, "lang", ""); lang != "" {
		settings.UI.Language = lang
	}
	if settings.Weather.Timeout < 0 {
		settings.Weather.Timeout = defaultTimeout
	}

	return settings
}

// resolveAPIKey looks for the provider key in the config file, the --api-key flag,
// the environment and finally the build-time value.
func resolveAPIKey(get Getter, getenv func(string) string) string {
	if v := stringFromConfig(get, "settings.weather.api_key", ""); v != "" {
		return v
	}
	if v := stringFromConfig(get, "api-key", ""); v != "" {
		return v
	}
	if getenv != nil {
		if v := strings.TrimSpace(getenv(APIKeyEnv)); v != "" {
			return v
		}
	}
	return strings.TrimSpace(BuildAPIKey)
}

func stringFromConfig(get Getter, key, def string) string {
	switch v := get(key).(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	case fmt.Stringer:
		if trimmed := strings.TrimSpace(v.String()); trimmed != "" {
			return trimmed
		}
	}
	return def
}

// intFromConfig reads an int configuration value with a default fallback.
func intFromConfig(get Getter, key string, def int) int {
	switch v := get(key).(type) {
	case nil:
		return def
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return def
		}
		var parsed int
		if _, err := fmt.Sscanf(trimmed, "%d", &parsed); err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

func boolFromConfig(get Getter, key string, def bool) bool {
	switch v := get(key).(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return def
}
