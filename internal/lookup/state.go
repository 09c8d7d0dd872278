// Package lookup is the query controller of the weather widget.
//
// It owns the query text and the lookup state, and derives exactly one
// view (loading, error, prompt or result) from them.
package lookup

import (
	"github.com/Laisky/weather-widget/library/weather"
)

// Phase is the variant tag of State.
type Phase int

const (
	// PhaseIdle means no lookup has completed since construction.
	PhaseIdle Phase = iota
	// PhaseLoading means a lookup is in flight.
	PhaseLoading
	// PhaseFailed means the most recent lookup failed.
	PhaseFailed
	// PhaseSucceeded means the most recent lookup returned an observation.
	PhaseSucceeded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// State is the lookup state. Only the constructors below can build one,
// so a loading state never carries a result or an error.
type State struct {
	phase   Phase
	kind    weather.ErrorKind
	message string
	result  *weather.Observation
}

// IdleState is the state at construction.
func IdleState() State {
	return State{phase: PhaseIdle}
}

// LoadingState is the state while a lookup is in flight.
func LoadingState() State {
	return State{phase: PhaseLoading}
}

// FailedState is the state after a failed lookup. message is what the user sees
// and is never empty.
func FailedState(kind weather.ErrorKind, message string) State {
	if message == "" {
		message = "lookup failed"
	}
	return State{phase: PhaseFailed, kind: kind, message: message}
}

// SucceededState is the state after a successful lookup.
// A nil result yields IdleState.
func SucceededState(result *weather.Observation) State {
	if result == nil {
		return IdleState()
	}
	cp := *result
	return State{phase: PhaseSucceeded, result: &cp}
}

// Phase returns the variant tag.
func (s State) Phase() Phase {
	return s.phase
}

// IsLoading reports whether a lookup is in flight.
func (s State) IsLoading() bool {
	return s.phase == PhaseLoading
}

// ErrorText returns the user-facing failure message, if any.
func (s State) ErrorText() (string, bool) {
	if s.phase != PhaseFailed {
		return "", false
	}
	return s.message, true
}

// ErrorKind returns the failure classification, if any.
func (s State) ErrorKind() (weather.ErrorKind, bool) {
	if s.phase != PhaseFailed {
		return "", false
	}
	return s.kind, true
}

// Result returns a copy of the observation, if any.
func (s State) Result() (*weather.Observation, bool) {
	if s.phase != PhaseSucceeded || s.result == nil {
		return nil, false
	}
	cp := *s.result
	return &cp, true
}

// View derives the single visible view of the state.
func (s State) View() View {
	errText, _ := s.ErrorText()
	result, _ := s.Result()
	return Classify(s.IsLoading(), errText, result)
}
