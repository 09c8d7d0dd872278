package lookup

import (
	"strings"

	errors "github.com/Laisky/errors/v2"

	"github.com/Laisky/weather-widget/library/weather"
)

// Messages holds the fixed display strings of the widget.
type Messages struct {
	Title       string
	Placeholder string
	Button      string
	Loading     string
	Prompt      string
	NotFound    string
	Generic     string
}

// MessagesZhTW is the default catalog.
var MessagesZhTW = Messages{
	Title:       "🌤️ 天氣查詢小工具",
	Placeholder: "請輸入城市名稱（例如 Taipei）",
	Button:      "查詢",
	Loading:     "讀取中...",
	Prompt:      "請輸入城市開始查詢",
	NotFound:    "找不到城市，請確認拼字",
	Generic:     "發生錯誤，請稍後再試",
}

// MessagesEN is the English catalog.
var MessagesEN = Messages{
	Title:       "🌤️ Weather Lookup",
	Placeholder: "Enter a city name (e.g. Taipei)",
	Button:      "Search",
	Loading:     "Loading...",
	Prompt:      "Enter a city to start",
	NotFound:    "City not found, check spelling",
	Generic:     "An error occurred, try again later",
}

const (
	// LanguageZhTW selects MessagesZhTW.
	LanguageZhTW = "zh-TW"
	// LanguageEN selects MessagesEN.
	LanguageEN = "en"
)

// MessagesFor returns the catalog for a language tag. Empty selects zh-TW.
func MessagesFor(lang string) (Messages, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", "zh-tw", "zh_tw", "zh":
		return MessagesZhTW, nil
	case "en", "en-us", "en_us":
		return MessagesEN, nil
	default:
		return Messages{}, errors.Errorf("unsupported language %q", lang)
	}
}

// Describe maps a failure kind onto the user-facing message.
// Only NotFound gets its own text, every other kind shares the generic one.
func (m Messages) Describe(kind weather.ErrorKind) string {
	if kind == weather.KindNotFound {
		return m.NotFound
	}
	return m.Generic
}
