package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"namewheel/internal/logger"
	"namewheel/internal/tui/completion"
	"namewheel/internal/tui/components"
	"namewheel/internal/wheel"
)

const (
	statusDuration = 3 * time.Second
	exportPath     = "names.txt"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.width = msg.Width
		m.viewport.height = msg.Height
		m.statusline.SetWidth(msg.Width)
		m.input.Width = msg.Width - 8
		m.winnerModal.Update(msg)
		m.ready = true
		return m, nil

	case AmbientTickMsg:
		if m.wheel.Ambient(msg.Token) {
			return m, m.ambientTick(msg.Token)
		}
		return m, nil

	case SpinFrameMsg:
		return m.handleFrame(msg)

	case StatusExpireMsg:
		if m.statusline.HasExpired(time.Now()) {
			m.statusline.ClearMessage()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.winnerModal.IsVisible() {
			return m, m.winnerModal.Update(msg)
		}
		if m.helpModal.IsVisible() {
			if msg.String() == "esc" || msg.String() == "?" {
				m.helpModal.Hide()
			}
			return m, nil
		}
		if m.confirm.IsVisible() {
			if action, ok := m.confirm.Update(msg); ok {
				return m.applyConfirmed(action)
			}
			return m, nil
		}
		if m.inputMode != inputNone {
			return m.handleInput(msg)
		}
		return m.handleKey(msg)
	}

	if m.inputMode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.helpModal.Show()
		return m, nil
	case " ", "enter":
		return m.spin()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < m.app.List.Len()-1 {
			m.selected++
		}
		return m, nil
	}

	// Everything below edits the list or settings.
	if m.wheel.State() == wheel.Spinning {
		return m, m.setStatus(components.StatuslineWarning, "Wait for the wheel to stop")
	}

	switch msg.String() {
	case "a":
		return m.openInput(inputAdd, "Add a name")
	case "i":
		return m.openInput(inputImport, "Path of a text file, one name per line")
	case "d":
		if m.app.List.Len() == 0 {
			return m, nil
		}
		m.clampSelection()
		name := m.app.List.Entries()[m.selected]
		m.confirm.Ask(fmt.Sprintf("Remove %q?", name), confirmRemove)
		return m, nil
	case "c":
		if m.app.List.Len() == 0 {
			return m, nil
		}
		m.confirm.Ask("Remove all names?", confirmClear)
		return m, nil
	case "s":
		m.app.List.Sort()
		m.lastWon = -1
		return m, m.listChanged("Sorted")
	case "f":
		m.app.List.Shuffle(m.app.Rand)
		m.lastWon = -1
		return m, m.listChanged("Shuffled")
	case "e":
		return m, m.exportNames()
	case "y":
		if err := clipboard.WriteAll(strings.Join(m.app.List.Values(), "\n")); err != nil {
			logger.Error("Clipboard copy failed: %v", err)
			return m, m.setStatus(components.StatuslineError, "Clipboard unavailable: "+err.Error())
		}
		return m, m.setStatus(components.StatuslineInfo, fmt.Sprintf("Copied %d names", m.app.List.Len()))
	case "r":
		m.app.Settings.RemoveAfterWin = !m.app.Settings.RemoveAfterWin
		return m, m.settingsChanged()
	case "p":
		m.app.Settings.ShuffleBeforeSpin = !m.app.Settings.ShuffleBeforeSpin
		return m, m.settingsChanged()
	case "t":
		m.app.Settings.DarkMode = !m.app.Settings.DarkMode
		return m, m.settingsChanged()
	}
	return m, nil
}

func (m Model) spin() (tea.Model, tea.Cmd) {
	if m.wheel.State() == wheel.Spinning {
		return m, nil
	}
	if m.app.List.Len() < 2 {
		return m, m.setStatus(components.StatuslineWarning, "Add at least two names to spin")
	}
	id, ok := m.wheel.StartSpin(time.Now())
	if !ok {
		return m, nil
	}
	return m.spinStarted(id)
}

func (m Model) spinStarted(id wheel.SessionID) (tea.Model, tea.Cmd) {
	m.lastWon = -1
	logger.Event("spin", id.String())
	return m, m.spinFrame(id)
}

func (m Model) handleFrame(msg SpinFrameMsg) (tea.Model, tea.Cmd) {
	res := m.wheel.Frame(msg.Session, msg.Time)
	if !res.Applied {
		return m, nil
	}
	m.spinner.Tick()
	if res.Next() {
		return m, m.spinFrame(msg.Session)
	}

	if won, ok := m.app.takeWinner(); ok {
		m.winnerModal.Show(won.Entry, won.Hue, won.Removed, m.viewport.width, m.viewport.height)
		if won.Removed {
			m.lastWon = -1
			m.clampSelection()
		} else {
			m.lastWon = won.Index
			if m.app.Settings.ShuffleBeforeSpin {
				m.app.saveEntries()
			}
		}
	}
	return m, m.startAmbient()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g := m.geometry()
	x, y := g.ToDisc(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && g.Contains(msg.X, msg.Y) && !m.winnerModal.IsVisible() {
			m.wheel.BeginDrag(x, y)
		}
	case tea.MouseActionMotion:
		if m.wheel.State() == wheel.Dragging {
			m.wheel.DragTo(x, y)
		}
	case tea.MouseActionRelease:
		if m.wheel.State() != wheel.Dragging {
			return m, nil
		}
		if id, ok := m.wheel.EndDrag(x, y, time.Now()); ok {
			return m.spinStarted(id)
		}
		return m, m.startAmbient()
	}
	return m, nil
}

func (m Model) openInput(mode inputMode, placeholder string) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m Model) closeInput() Model {
	m.inputMode = inputNone
	m.suggest.Reset()
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeInput(), nil
	case tea.KeyEnter:
		value := m.input.Value()
		switch m.inputMode {
		case inputAdd:
			m.input.SetValue("")
			if m.wheel.State() == wheel.Spinning {
				return m, m.setStatus(components.StatuslineWarning, "Wait for the wheel to stop")
			}
			if !m.app.List.Add(value) {
				return m, nil
			}
			return m, m.listChanged(fmt.Sprintf("Added %q", strings.TrimSpace(value)))
		case inputImport:
			m = m.closeInput()
			cmd := m.importNames(strings.TrimSpace(value))
			m.clampSelection()
			return m, cmd
		}
	case tea.KeyTab, tea.KeyShiftTab:
		if m.inputMode == inputImport {
			return m.cycleSuggestion(msg.Type == tea.KeyShiftTab), nil
		}
	default:
		m.suggest.Reset()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleSuggestion fills the import prompt with the next matching file,
// listing candidates on the first Tab.
func (m Model) cycleSuggestion(back bool) Model {
	switch {
	case !m.suggest.Active:
		query := m.input.Value()
		if !m.suggest.Open(query, completion.NameFiles(m.importRoot, query)) {
			return m
		}
	case back:
		m.suggest.Prev()
	default:
		m.suggest.Next()
	}
	m.input.SetValue(filepath.Join(m.importRoot, m.suggest.Current()))
	m.input.CursorEnd()
	return m
}

func (m Model) applyConfirmed(action int) (tea.Model, tea.Cmd) {
	if m.wheel.State() == wheel.Spinning {
		return m, m.setStatus(components.StatuslineWarning, "Wait for the wheel to stop")
	}
	switch action {
	case confirmRemove:
		name, ok := m.app.List.RemoveAt(m.selected)
		if !ok {
			return m, nil
		}
		m.lastWon = -1
		m.clampSelection()
		return m, m.listChanged(fmt.Sprintf("Removed %q", name))
	case confirmClear:
		m.app.List.Clear()
		m.lastWon = -1
		m.selected = 0
		return m, m.listChanged("Cleared all names")
	}
	return m, nil
}

func (m Model) importNames(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return m.setStatus(components.StatuslineError, "Import failed: "+err.Error())
	}
	defer f.Close()

	n, err := m.app.List.Import(f)
	if err != nil {
		return m.setStatus(components.StatuslineError, "Import failed: "+err.Error())
	}
	if n == 0 {
		return m.setStatus(components.StatuslineWarning, "No names found in "+path)
	}
	return m.listChanged(fmt.Sprintf("Imported %d names", n))
}

func (m Model) exportNames() tea.Cmd {
	f, err := os.Create(exportPath)
	if err != nil {
		return m.setStatus(components.StatuslineError, "Export failed: "+err.Error())
	}
	if err := m.app.List.Export(f); err != nil {
		f.Close()
		return m.setStatus(components.StatuslineError, err.Error())
	}
	if err := f.Close(); err != nil {
		return m.setStatus(components.StatuslineError, "Export failed: "+err.Error())
	}
	return m.setStatus(components.StatuslineInfo, fmt.Sprintf("Exported %d names to %s", m.app.List.Len(), exportPath))
}

func (m *Model) clampSelection() {
	if m.selected >= m.app.List.Len() {
		m.selected = m.app.List.Len() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// listChanged persists the list and reports what happened
func (m Model) listChanged(status string) tea.Cmd {
	logger.Event("entries", m.app.List.Values())
	if err := m.app.saveEntries(); err != nil {
		return m.setStatus(components.StatuslineError, "Could not save names: "+err.Error())
	}
	return m.setStatus(components.StatuslineInfo, status)
}

func (m Model) settingsChanged() tea.Cmd {
	s := m.app.Settings
	logger.Event("settings", s)
	if err := m.app.saveSettings(); err != nil {
		return m.setStatus(components.StatuslineError, "Could not save settings: "+err.Error())
	}
	return m.setStatus(components.StatuslineInfo, fmt.Sprintf("Remove winner %s, shuffle before spin %s, dark theme %s",
		onOff(s.RemoveAfterWin), onOff(s.ShuffleBeforeSpin), onOff(s.DarkMode)))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// setStatus shows a transient message and schedules its expiry
func (m Model) setStatus(kind components.StatuslineMessageType, text string) tea.Cmd {
	m.statusline.SetMessage(&components.StatuslineMessage{
		Type:     kind,
		Text:     text,
		Duration: statusDuration,
		ShowTime: time.Now(),
	})
	return tea.Tick(statusDuration+10*time.Millisecond, func(time.Time) tea.Msg {
		return StatusExpireMsg{}
	})
}
