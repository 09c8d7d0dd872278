package tui

import "strings"

// conditionGlyphs maps the two-digit provider icon prefix to a terminal glyph.
var conditionGlyphs = map[string]string{
	"01": "☀️",
	"02": "🌤️",
	"03": "⛅",
	"04": "☁️",
	"09": "🌧️",
	"10": "🌦️",
	"11": "⛈️",
	"13": "❄️",
	"50": "🌫️",
}

// ConditionGlyph picks a glyph for an icon code such as "10d".
func ConditionGlyph(code string) string {
	code = strings.TrimSpace(code)
	if code == "01n" {
		return "🌙"
	}
	if len(code) >= 2 {
		if glyph, ok := conditionGlyphs[code[:2]]; ok {
			return glyph
		}
	}
	return "🌡️"
}
