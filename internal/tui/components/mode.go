package components

import (
	"github.com/charmbracelet/lipgloss"

	"namewheel/internal/wheel"
)

// StateIndicatorComponent renders the spin controller state as a coloured tag
type StateIndicatorComponent struct {
	state wheel.State
}

// NewStateIndicatorComponent creates a new state indicator component
func NewStateIndicatorComponent(state wheel.State) *StateIndicatorComponent {
	return &StateIndicatorComponent{
		state: state,
	}
}

func (s *StateIndicatorComponent) text() string {
	switch s.state {
	case wheel.Dragging:
		return " DRAG "
	case wheel.Spinning:
		return " SPIN "
	default:
		return " IDLE "
	}
}

// Render renders the indicator with a coloured background
func (s *StateIndicatorComponent) Render() string {
	var stateColor string

	switch s.state {
	case wheel.Dragging:
		stateColor = "5" // Magenta while the user holds the disc
	case wheel.Spinning:
		stateColor = "2" // Green while spinning
	default:
		stateColor = "4" // Blue when idle
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(stateColor)).
		Render(s.text())
}

// Width returns the width of the indicator
func (s *StateIndicatorComponent) Width() int {
	return len(s.text())
}
