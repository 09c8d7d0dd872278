package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Violet
	secondaryColor = lipgloss.Color("#10B981") // Emerald
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red

	fgColor     = lipgloss.Color("#CDD6F4") // Light foreground
	mutedColor  = lipgloss.Color("#6C7086") // Muted text
	borderColor = lipgloss.Color("#45475A") // Border
	selectedBg  = lipgloss.Color("#313244") // Selected background
)

// headerStyle renders the widget title banner
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(fgColor).
	Background(primaryColor).
	Padding(0, 2).
	MarginBottom(1)

var subtitleStyle = lipgloss.NewStyle().
	Foreground(mutedColor).
	Italic(true)

var helpStyle = lipgloss.NewStyle().
	Foreground(mutedColor).
	MarginTop(1)

// cardStyle frames the weather result
var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Padding(1, 2)

var errorStyle = lipgloss.NewStyle().
	Foreground(errorColor).
	Bold(true)

var locationStyle = lipgloss.NewStyle().
	Foreground(secondaryColor).
	Bold(true)

var temperatureStyle = lipgloss.NewStyle().
	Foreground(accentColor).
	Bold(true)

var inputPromptStyle = lipgloss.NewStyle().
	Foreground(secondaryColor).
	Bold(true)

var progressStyle = lipgloss.NewStyle().
	Foreground(accentColor)

var buttonStyle = lipgloss.NewStyle().
	Foreground(fgColor).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Padding(0, 2)

// focusedButtonStyle is the button while it holds keyboard focus
var focusedButtonStyle = buttonStyle.
	Foreground(secondaryColor).
	Background(selectedBg).
	BorderForeground(primaryColor).
	Bold(true)

// GetButtonStyle returns the search button style for the focus state
func GetButtonStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedButtonStyle
	}
	return buttonStyle
}
