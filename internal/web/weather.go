package web

import (
	"net/http"
	"strings"

	gmw "github.com/Laisky/gin-middlewares/v7"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/Laisky/weather-widget/internal/lookup"
	"github.com/Laisky/weather-widget/library/weather"
)

type weatherHandler struct {
	provider lookup.Provider
	language string
}

// WeatherResponse is the /weather JSON document.
type WeatherResponse struct {
	State     string       `json:"state"`
	Message   string       `json:"message,omitempty"`
	ErrorKind string       `json:"error_kind,omitempty"`
	Result    *WeatherCard `json:"result,omitempty"`
}

// WeatherCard is the result part of a WeatherResponse.
type WeatherCard struct {
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	ConditionCode string  `json:"condition_code"`
	TemperatureC  float64 `json:"temperature_c"`
	Temperature   string  `json:"temperature"`
	IconURL       string  `json:"icon_url"`
}

// NewWeatherResponse renders a settled controller state as the /weather JSON document
// together with its HTTP status.
func NewWeatherResponse(state lookup.State, messages lookup.Messages) (int, WeatherResponse) {
	switch state.View() {
	case lookup.ViewError:
		text, _ := state.ErrorText()
		kind, _ := state.ErrorKind()
		status := http.StatusBadGateway
		if kind == weather.KindNotFound {
			status = http.StatusNotFound
		}
		return status, WeatherResponse{
			State:     lookup.ViewError.String(),
			Message:   text,
			ErrorKind: string(kind),
		}
	case lookup.ViewResult:
		result, _ := state.Result()
		card := &WeatherCard{}
		if err := copier.Copy(card, result); err != nil {
			return http.StatusInternalServerError, WeatherResponse{
				State:   lookup.ViewError.String(),
				Message: messages.Generic,
			}
		}
		card.Temperature = lookup.FormatTemperature(result.TemperatureC)
		card.IconURL = result.IconURL()

		return http.StatusOK, WeatherResponse{
			State:  lookup.ViewResult.String(),
			Result: card,
		}
	default:
		return http.StatusBadRequest, WeatherResponse{
			State:   lookup.ViewPrompt.String(),
			Message: messages.Prompt,
		}
	}
}

// Get handles GET /weather?q=<city>&lang=<language>.
func (h *weatherHandler) Get(ctx *gin.Context) {
	logger := gmw.GetLogger(ctx).Named("weather")

	lang := strings.TrimSpace(ctx.Query("lang"))
	if lang == "" {
		lang = h.language
	}
	messages, err := lookup.MessagesFor(lang)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, WeatherResponse{
			State:   lookup.ViewError.String(),
			Message: err.Error(),
		})
		return
	}

	controller, err := lookup.NewController(h.provider,
		lookup.WithMessages(messages),
		lookup.WithLogger(logger))
	if err != nil {
		logger.Error("new lookup controller", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	controller.UpdateQuery(ctx.Query("q"))
	status, body := NewWeatherResponse(controller.Search(ctx), messages)
	ctx.JSON(status, body)
}
