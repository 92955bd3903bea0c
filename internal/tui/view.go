package tui

import (
	"github.com/charmbracelet/lipgloss"

	"namewheel/internal/tui/components"
	"namewheel/internal/wheel"
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Overlays replace the whole screen
	if m.helpModal.IsVisible() {
		return m.helpModal.View()
	}
	if m.winnerModal.IsVisible() {
		return m.winnerModal.View()
	}

	theme := components.ThemeFor(m.app.Settings.DarkMode)
	g := m.geometry()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Accent).
		Padding(0, 1).
		Render("Wheel of Names")

	disc := components.NewDiscComponent(g, m.wheel.Slices(), m.wheel.Angle(), theme).Render()

	// Title row, disc rows, then input, statusline and footer
	listHeight := m.viewport.height - 4
	listWidth := m.viewport.width - g.Width() - 2
	list := components.NewEntryListComponent(m.app.List.Entries(), m.selected, m.lastWon, listWidth, listHeight, theme).Render()

	body := lipgloss.JoinHorizontal(lipgloss.Top, disc, "  ", list)

	var prompt string
	switch {
	case m.confirm.IsVisible():
		prompt = m.confirm.View() + "\n"
	case m.inputMode != inputNone:
		prompt = components.NewInputComponent(m.input, m.viewport.width).Render() + "\n"
		if m.suggest.Active {
			prompt += components.NewSuggestionComponent(m.suggest.Items, m.suggest.Selected, m.viewport.width).Render() + "\n"
		}
	}

	footer := components.NewFooterComponent(m.wheel.State(), m.viewport.width, m.app.List.Len(), components.FooterSettings{
		RemoveAfterWin:    m.app.Settings.RemoveAfterWin,
		DarkMode:          m.app.Settings.DarkMode,
		ShuffleBeforeSpin: m.app.Settings.ShuffleBeforeSpin,
	})
	if m.wheel.State() == wheel.Spinning {
		footer.SetSpinner(m.spinner.View())
	}

	// Pad so the footer stays on the last row
	content := title + "\n" + body + "\n" + prompt
	if gap := m.viewport.height - lipgloss.Height(content) - 2; gap > 0 {
		content += lipgloss.NewStyle().Height(gap).Render("") + "\n"
	}

	return content + m.statusline.Render() + "\n" + footer.Render()
}
