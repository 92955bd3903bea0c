package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal asks a yes/no question before a destructive list edit
type ConfirmModal struct {
	visible  bool
	question string
	action   int
}

func NewConfirmModal() *ConfirmModal {
	return &ConfirmModal{}
}

// Ask shows question; action is handed back when the user confirms.
func (c *ConfirmModal) Ask(question string, action int) {
	c.visible = true
	c.question = question
	c.action = action
}

func (c *ConfirmModal) IsVisible() bool {
	return c.visible
}

// Update returns the confirmed action, or false when the modal was
// dismissed or the key was not an answer.
func (c *ConfirmModal) Update(msg tea.Msg) (int, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !c.visible || !ok {
		return 0, false
	}
	switch key.String() {
	case "y", "enter":
		c.visible = false
		return c.action, true
	case "n", "esc":
		c.visible = false
	}
	return 0, false
}

func (c *ConfirmModal) View() string {
	if !c.visible {
		return ""
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(0, 1).
		Render(c.question + "  " + lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("[y/n]"))
}
