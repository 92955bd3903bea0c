package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"namewheel/internal/wheel"
)

// FooterSettings are the toggles shown in the footer
type FooterSettings struct {
	RemoveAfterWin    bool
	DarkMode          bool
	ShuffleBeforeSpin bool
}

// FooterComponent handles the rendering of the status bar footer
type FooterComponent struct {
	state    wheel.State
	width    int
	entries  int
	settings FooterSettings
	spinner  string
}

// NewFooterComponent creates a new footer component
func NewFooterComponent(state wheel.State, width, entries int, settings FooterSettings) *FooterComponent {
	return &FooterComponent{
		state:    state,
		width:    width,
		entries:  entries,
		settings: settings,
	}
}

// SetSpinner sets the animation frame shown while spinning
func (f *FooterComponent) SetSpinner(frame string) {
	f.spinner = frame
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Render renders the footer with state indicator and status bar
func (f *FooterComponent) Render() string {
	indicator := NewStateIndicatorComponent(f.state)
	indicatorRendered := indicator.Render()

	remainingWidth := f.width - indicator.Width()

	theme := "light"
	if f.settings.DarkMode {
		theme = "dark"
	}

	entriesText := fmt.Sprintf("%d entries", f.entries)
	if f.state == wheel.Spinning && f.spinner != "" {
		entriesText = f.spinner + " spinning…"
	}

	// Layout: namewheel | entries | toggles | help
	sections := []string{
		"namewheel",
		entriesText,
		fmt.Sprintf("remove winner %s · shuffle %s · %s", onOff(f.settings.RemoveAfterWin), onOff(f.settings.ShuffleBeforeSpin), theme),
		"? help",
	}

	totalContentWidth := 0
	for _, section := range sections {
		totalContentWidth += lipgloss.Width(section)
	}

	separatorCount := len(sections) - 1
	availableWidth := remainingWidth - totalContentWidth - separatorCount*3 - 2
	extraSpacePerGap := availableWidth / separatorCount
	if extraSpacePerGap < 0 {
		extraSpacePerGap = 0
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Background(lipgloss.Color("236"))

	entriesColor := "2" // Green when the wheel can spin
	if f.entries < 2 {
		entriesColor = "1" // Red: not enough entries
	}
	styled := make([]string, len(sections))
	for i, section := range sections {
		styled[i] = style.Render(section)
	}
	styled[1] = style.Foreground(lipgloss.Color(entriesColor)).Render(sections[1])

	separator := style.Render(strings.Repeat(" ", 3+extraSpacePerGap))
	composedFooter := strings.Join(styled, separator)

	paddingNeeded := remainingWidth - lipgloss.Width(composedFooter) - 2
	if paddingNeeded > 0 {
		composedFooter += style.Render(strings.Repeat(" ", paddingNeeded))
	}

	mainFooter := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Width(remainingWidth).
		Padding(0, 1).
		Render(composedFooter)

	return indicatorRendered + mainFooter
}
