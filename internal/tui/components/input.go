package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// InputComponent handles the rendering of the prompt used to add or import names
type InputComponent struct {
	input textinput.Model
	width int
}

// NewInputComponent creates a new input component
func NewInputComponent(input textinput.Model, width int) *InputComponent {
	return &InputComponent{
		input: input,
		width: width,
	}
}

// Render renders the input area with border and styling
func (i *InputComponent) Render() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(i.width-2).
		Padding(0, 1).
		Render(i.input.View())
}
