package components

import "github.com/charmbracelet/lipgloss"

// Theme holds the colours that change with the dark mode setting
type Theme struct {
	Foreground lipgloss.Color
	Panel      lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Hub        string
}

// ThemeFor returns the light or dark theme
func ThemeFor(dark bool) Theme {
	if dark {
		return Theme{
			Foreground: lipgloss.Color("252"),
			Panel:      lipgloss.Color("236"),
			Muted:      lipgloss.Color("240"),
			Accent:     lipgloss.Color("86"),
			Hub:        "●",
		}
	}
	return Theme{
		Foreground: lipgloss.Color("235"),
		Panel:      lipgloss.Color("254"),
		Muted:      lipgloss.Color("245"),
		Accent:     lipgloss.Color("33"),
		Hub:        "○",
	}
}
