package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/jinzhu/copier"
	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/weather-widget/internal/lookup"
)

// currentWeatherResponse is the JSON payload of a successful current_weather call.
type currentWeatherResponse struct {
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	ConditionCode string  `json:"condition_code"`
	TemperatureC  float64 `json:"temperature_c"`
	Temperature   string  `json:"temperature"`
	IconURL       string  `json:"icon_url"`
}

// CurrentWeatherTool implements the current_weather MCP tool.
type CurrentWeatherTool struct {
	provider lookup.Provider
	messages lookup.Messages
	logger   logSDK.Logger
}

// NewCurrentWeatherTool constructs a CurrentWeatherTool.
func NewCurrentWeatherTool(provider lookup.Provider, messages lookup.Messages, logger logSDK.Logger) (*CurrentWeatherTool, error) {
	if provider == nil {
		return nil, errors.New("weather provider is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &CurrentWeatherTool{
		provider: provider,
		messages: messages,
		logger:   logger,
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *CurrentWeatherTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"current_weather",
		mcp.WithDescription("Look up the current weather conditions for a city by name. Temperatures are in Celsius."),
		mcp.WithString(
			"city",
			mcp.Required(),
			mcp.Description("City name, e.g. Taipei."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle executes one lookup. Every call gets its own controller.
func (t *CurrentWeatherTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := req.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return mcp.NewToolResultError("city cannot be empty"), nil
	}

	controller, err := lookup.NewController(t.provider,
		lookup.WithMessages(t.messages),
		lookup.WithLogger(t.logger))
	if err != nil {
		return nil, errors.Wrap(err, "new lookup controller")
	}

	start := time.Now()
	controller.UpdateQuery(city)
	state := controller.Search(ctx)

	if text, failed := state.ErrorText(); failed {
		kind, _ := state.ErrorKind()
		t.logger.Debug("current_weather failed",
			zap.String("city", city),
			zap.String("kind", string(kind)),
			zap.Duration("duration", time.Since(start)))
		return mcp.NewToolResultError(fmt.Sprintf("%s (%s)", text, kind)), nil
	}

	result, ok := state.Result()
	if !ok {
		return mcp.NewToolResultError(t.messages.Generic), nil
	}

	payload := currentWeatherResponse{}
	if err = copier.Copy(&payload, result); err != nil {
		return nil, errors.Wrap(err, "copy observation")
	}
	card := lookup.NewCard(*result)
	payload.Temperature = card.Temperature
	payload.IconURL = card.IconURL

	toolResult, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("failed to encode response"), nil
	}

	t.logger.Debug("current_weather completed",
		zap.String("city", city),
		zap.Duration("duration", time.Since(start)))
	return toolResult, nil
}
