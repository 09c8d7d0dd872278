// Package mcp exposes the weather lookup as an MCP tool over streamable HTTP.
package mcp

import (
	"net/http"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	srv "github.com/mark3labs/mcp-go/server"

	"github.com/Laisky/weather-widget/internal/lookup"
	"github.com/Laisky/weather-widget/library/log"
)

const (
	serverName    = "weather-widget"
	serverVersion = "1.0.0"
)

// Server wraps the MCP server state for the HTTP transport.
type Server struct {
	handler http.Handler
	logger  logSDK.Logger
}

// NewServer constructs an MCP server exposing current_weather.
func NewServer(provider lookup.Provider, messages lookup.Messages, logger logSDK.Logger) (*Server, error) {
	if provider == nil {
		return nil, errors.New("weather provider is required")
	}
	if logger == nil {
		logger = log.Logger
	}
	logger = logger.Named("mcp")

	tool, err := NewCurrentWeatherTool(provider, messages, logger.Named("current_weather"))
	if err != nil {
		return nil, errors.Wrap(err, "new current_weather tool")
	}

	mcpServer := srv.NewMCPServer(
		serverName,
		serverVersion,
		srv.WithToolCapabilities(true),
		srv.WithInstructions("Use the current_weather tool to look up current conditions for a city."),
		srv.WithRecovery(),
		srv.WithHooks(newMCPHooks(logger.Named("mcp_hooks"))),
	)
	mcpServer.AddTool(tool.Definition(), tool.Handle)

	return &Server{
		handler: srv.NewStreamableHTTPServer(mcpServer),
		logger:  logger,
	}, nil
}

// Handler returns the HTTP handler that should be mounted to serve MCP traffic.
func (s *Server) Handler() http.Handler {
	return s.handler
}
