package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"namewheel/internal/config"
	"namewheel/internal/logger"
)

// RunTUI starts the TUI interface and blocks until the user quits
func RunTUI(app *App, cfg config.Config) error {
	m := NewModel(app, cfg)

	// Mouse cell motion is needed to drag the wheel
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited: %v", err)
		return err
	}
	return nil
}
