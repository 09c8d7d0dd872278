package lookup

import (
	"strconv"
	"strings"

	"github.com/Laisky/weather-widget/library/weather"
)

// View is what the widget shows below the search box.
type View int

const (
	// ViewLoading shows the loading indicator.
	ViewLoading View = iota
	// ViewError shows the failure message.
	ViewError
	// ViewPrompt shows the initial "enter a city" prompt.
	ViewPrompt
	// ViewResult shows the result card.
	ViewResult
)

// String returns the view name used by the HTTP surface.
func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewPrompt:
		return "prompt"
	case ViewResult:
		return "result"
	default:
		return "unknown"
	}
}

// Classify picks the view for a combination of loading flag, error text and result.
// The checks run in a fixed priority order, so every combination maps to exactly one view:
// loading, then error, then prompt when there is no result, then result.
func Classify(loading bool, errText string, result *weather.Observation) View {
	switch {
	case loading:
		return ViewLoading
	case errText != "":
		return ViewError
	case result == nil:
		return ViewPrompt
	default:
		return ViewResult
	}
}

// Card is the rendered content of a result.
type Card struct {
	Location    string
	Description string
	Temperature string
	IconCode    string
	IconURL     string
}

// NewCard renders an observation into display strings.
func NewCard(obs weather.Observation) Card {
	return Card{
		Location:    obs.Location,
		Description: obs.Description,
		Temperature: FormatTemperature(obs.TemperatureC),
		IconCode:    obs.ConditionCode,
		IconURL:     obs.IconURL(),
	}
}

// String renders the card as plain text lines.
func (c Card) String() string {
	return strings.Join([]string{c.Location, c.Description, c.Temperature}, "\n")
}

// FormatTemperature renders a Celsius value with the shortest exact decimal, e.g. "28.5°C".
func FormatTemperature(celsius float64) string {
	return strconv.FormatFloat(celsius, 'f', -1, 64) + "°C"
}
