// Package tui provides the interactive terminal weather widget.
// It uses the Charm Bubble Tea framework on top of the lookup controller.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Laisky/weather-widget/internal/lookup"
)

// focusTarget is the widget element receiving key input
type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// searchSettledMsg carries a finished lookup back into the update loop
type searchSettledMsg struct {
	ticket  lookup.Ticket
	outcome lookup.Outcome
}

// Model is the widget model following the Bubble Tea architecture
type Model struct {
	ctx        context.Context
	controller *lookup.Controller
	messages   lookup.Messages

	input   textinput.Model
	focus   focusTarget
	spinner spinner.Model
	// spinning is set while a spinner tick chain is in flight
	spinning bool

	width    int
	quitting bool
}

// keyMap defines the key bindings for the widget
type keyMap struct {
	Search key.Binding
	Tab    key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Search: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// NewModel creates the widget model around controller.
// ctx bounds every lookup the widget starts.
func NewModel(ctx context.Context, controller *lookup.Controller) Model {
	messages := controller.Messages()

	input := textinput.New()
	input.Placeholder = messages.Placeholder
	input.CharLimit = 128
	input.Width = 30
	input.Prompt = "🔍 "
	input.PromptStyle = inputPromptStyle
	input.SetValue(controller.Query())
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = progressStyle

	return Model{
		ctx:        ctx,
		controller: controller,
		messages:   messages,
		input:      input,
		focus:      focusInput,
		spinner:    sp,
	}
}

// Init initializes the widget
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchSettledMsg:
		m.controller.Settle(msg.ticket, msg.outcome)
		return m, nil

	case spinner.TickMsg:
		if !m.controller.State().IsLoading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes key events to the focused element
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.focus == focusInput {
			m.focus = focusButton
			m.input.Blur()
			return m, nil
		}
		m.focus = focusInput
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, keys.Search):
		return m.search()
	}

	if m.focus != focusInput {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.controller.UpdateQuery(m.input.Value())
	return m, cmd
}

// search begins a lookup and schedules its fetch off the update loop
func (m Model) search() (tea.Model, tea.Cmd) {
	ticket, ok := m.controller.Begin()
	if !ok {
		return m, nil
	}

	ctx, controller := m.ctx, m.controller
	fetch := func() tea.Msg {
		return searchSettledMsg{
			ticket:  ticket,
			outcome: controller.Fetch(ctx, ticket),
		}
	}

	if m.spinning {
		return m, fetch
	}
	m.spinning = true
	return m, tea.Batch(m.spinner.Tick, fetch)
}

// View renders the widget
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	searchRow := lipgloss.JoinHorizontal(lipgloss.Center,
		m.input.View(),
		"  ",
		GetButtonStyle(m.focus == focusButton).Render(m.messages.Button),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(m.messages.Title),
		searchRow,
		"",
		m.renderBody(),
		helpStyle.Render("tab: switch focus • enter: search • esc: quit"),
	)
}

// renderBody renders the part below the search row for the current view
func (m Model) renderBody() string {
	state := m.controller.State()

	switch state.View() {
	case lookup.ViewLoading:
		return m.spinner.View() + " " + m.messages.Loading
	case lookup.ViewError:
		text, _ := state.ErrorText()
		return errorStyle.Render(text)
	case lookup.ViewResult:
		result, _ := state.Result()
		return renderCard(lookup.NewCard(*result))
	default:
		return subtitleStyle.Render(m.messages.Prompt)
	}
}

// renderCard renders a weather result
func renderCard(card lookup.Card) string {
	var sb strings.Builder
	sb.WriteString(locationStyle.Render(card.Location) + "\n")
	sb.WriteString(ConditionGlyph(card.IconCode) + "  " + card.Description + "\n")
	sb.WriteString(temperatureStyle.Render(card.Temperature))

	return cardStyle.Render(sb.String())
}
