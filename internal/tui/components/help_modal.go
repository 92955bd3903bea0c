package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpModal represents a help modal showing the key bindings
type HelpModal struct {
	visible bool
}

func NewHelpModal() *HelpModal { return &HelpModal{} }

func (h *HelpModal) Show()           { h.visible = true }
func (h *HelpModal) Hide()           { h.visible = false }
func (h *HelpModal) IsVisible() bool { return h.visible }

var helpSections = []struct {
	title string
	keys  [][2]string
}{
	{"Wheel:", [][2]string{
		{"Space / Enter", "Spin the wheel"},
		{"Drag with mouse", "Turn the disc; pull and release to spin"},
	}},
	{"Entries:", [][2]string{
		{"a", "Add a name"},
		{"d", "Remove the selected name"},
		{"↑ / ↓", "Move the selection"},
		{"s", "Sort (alternates A→Z / Z→A)"},
		{"f", "Shuffle"},
		{"c", "Clear all names"},
		{"i", "Import names from a text file"},
		{"e", "Export names to names.txt"},
		{"y", "Copy names to the clipboard"},
	}},
	{"Settings:", [][2]string{
		{"r", "Toggle removing the winner"},
		{"p", "Toggle shuffling before each spin"},
		{"t", "Toggle dark theme"},
	}},
	{"General:", [][2]string{
		{"?", "Show this help"},
		{"q / Ctrl+C", "Quit"},
	}},
}

// View renders the help modal with the key column aligned
func (h *HelpModal) View() string {
	if !h.visible {
		return ""
	}

	accent := lipgloss.Color("214")
	section := lipgloss.NewStyle().Foreground(accent).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("246"))

	keyWidth := 0
	for _, sec := range helpSections {
		for _, kv := range sec.keys {
			keyWidth = max(keyWidth, lipgloss.Width(kv[0]))
		}
	}
	keyCol := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(keyWidth + 2)

	blocks := []string{lipgloss.NewStyle().Bold(true).Foreground(accent).Render("Name Wheel Help")}
	for _, sec := range helpSections {
		rows := []string{section.Render(sec.title)}
		for _, kv := range sec.keys {
			rows = append(rows, keyCol.Render(kv[0])+desc.Render(kv[1]))
		}
		blocks = append(blocks, strings.Join(rows, "\n"))
	}
	blocks = append(blocks, desc.Render("Press Esc or ? to close this help"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(strings.Join(blocks, "\n\n"))
}
