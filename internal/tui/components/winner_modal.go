package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WinnerModal announces the result of a spin, framed in the winning
// slice's colour
type WinnerModal struct {
	visible bool
	winner  string
	hue     float64
	removed bool
	width   int
	height  int
}

func NewWinnerModal() *WinnerModal {
	return &WinnerModal{}
}

// Show displays winner. hue is its slice hue; removed reports whether the
// entry was taken off the list.
func (m *WinnerModal) Show(winner string, hue float64, removed bool, width, height int) {
	*m = WinnerModal{
		visible: true,
		winner:  winner,
		hue:     hue,
		removed: removed,
		width:   width,
		height:  height,
	}
}

func (m *WinnerModal) Hide()           { m.visible = false }
func (m *WinnerModal) IsVisible() bool { return m.visible }
func (m *WinnerModal) Winner() string  { return m.winner }

// Update closes the modal on Esc, Enter or Space and tracks resizes
func (m *WinnerModal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter, tea.KeySpace:
			m.Hide()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return nil
}

func (m *WinnerModal) View() string {
	if !m.visible {
		return ""
	}
	if m.width < 20 || m.height < 8 {
		return fmt.Sprintf("Winner: %s", m.winner)
	}

	accent := lipgloss.Color(SliceHex(m.hue))
	inner := min(max(lipgloss.Width(m.winner)+8, 26), m.width-8)
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	note := "Esc, Enter or Space to close"
	if m.removed {
		note = "Removed from the wheel · " + note
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		center.Foreground(lipgloss.Color("241")).Render("the wheel picked"),
		"",
		center.Bold(true).Foreground(accent).Render(m.winner),
		"",
		center.Foreground(lipgloss.Color("241")).Render(note),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Render(body)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
