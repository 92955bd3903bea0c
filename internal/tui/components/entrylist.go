package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"namewheel/internal/wheel"
)

// EntryListComponent renders the entries beside the disc with their slice colour
type EntryListComponent struct {
	entries  []string
	selected int
	winner   int
	width    int
	height   int
	theme    Theme
}

// NewEntryListComponent creates the list panel. winner is -1 when no entry is highlighted.
func NewEntryListComponent(entries []string, selected, winner, width, height int, theme Theme) *EntryListComponent {
	return &EntryListComponent{
		entries:  entries,
		selected: selected,
		winner:   winner,
		width:    width,
		height:   height,
		theme:    theme,
	}
}

// visibleRange keeps the selection on screen
func (e *EntryListComponent) visibleRange() (int, int) {
	rows := e.height - 2
	if rows < 1 {
		rows = 1
	}
	start := 0
	if e.selected >= rows {
		start = e.selected - rows + 1
	}
	end := min(start+rows, len(e.entries))
	return start, end
}

// Render renders the panel
func (e *EntryListComponent) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(e.theme.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(e.theme.Muted)
	rowStyle := lipgloss.NewStyle().Foreground(e.theme.Foreground)
	selectedStyle := rowStyle.Bold(true).Reverse(true)
	winnerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	var content strings.Builder
	content.WriteString(titleStyle.Render(fmt.Sprintf("Entries (%d)", len(e.entries))))
	content.WriteString("\n")

	if len(e.entries) == 0 {
		content.WriteString(mutedStyle.Render("Press a to add a name"))
		return content.String()
	}

	labelWidth := e.width - 6
	if labelWidth < 4 {
		labelWidth = 4
	}
	start, end := e.visibleRange()
	for i := start; i < end; i++ {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(SliceHex(wheel.HueFor(i, len(e.entries))))).
			Render("■")
		label := runewidth.Truncate(e.entries[i], labelWidth, "…")

		style := rowStyle
		switch {
		case i == e.selected:
			style = selectedStyle
		case i == e.winner:
			style = winnerStyle
		}
		content.WriteString(swatch + " " + style.Render(label))
		if i < end-1 {
			content.WriteString("\n")
		}
	}
	if end < len(e.entries) {
		content.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("… %d more", len(e.entries)-end)))
	}
	return content.String()
}
