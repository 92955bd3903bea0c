package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"namewheel/internal/config"
	"namewheel/internal/logger"
	"namewheel/internal/tui/completion"
	"namewheel/internal/tui/components"
	"namewheel/internal/wheel"
)

// Model represents the Bubble Tea model for the TUI
type Model struct {
	app      *App
	cfg      config.Config
	wheel    *wheel.Controller
	viewport struct {
		width  int
		height int
	}
	ready    bool
	selected int
	lastWon  int // index highlighted in the list after a spin, -1 if none

	input      textinput.Model
	inputMode  inputMode
	suggest    completion.State
	importRoot string // directory searched for import suggestions

	spinner     *components.SpinnerComponent
	statusline  *components.StatuslineComponent
	helpModal   *components.HelpModal
	winnerModal *components.WinnerModal
	confirm     *components.ConfirmModal
}

type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputImport
)

// Confirmable list edits.
const (
	confirmRemove = iota + 1
	confirmClear
)

// SpinFrameMsg is one animation frame of the spin identified by Session
type SpinFrameMsg struct {
	Session wheel.SessionID
	Time    time.Time
}

// AmbientTickMsg advances the idle rotation armed with Token
type AmbientTickMsg struct {
	Token wheel.AmbientToken
}

// StatusExpireMsg clears the statusline once its message is stale
type StatusExpireMsg struct{}

// NewModel creates a new TUI model around app
func NewModel(app *App, cfg config.Config) Model {
	if app.Bell == nil {
		app.Bell = os.Stderr
	}

	ti := textinput.New()
	ti.CharLimit = 200

	controller := wheel.NewController(app.List,
		wheel.WithDuration(cfg.Spin.Duration),
		wheel.WithFullTurns(cfg.Spin.FullTurns),
		wheel.WithEasingPower(cfg.Spin.EasingPower),
		wheel.WithDragThreshold(cfg.Spin.DragThreshold),
		wheel.WithAmbientStep(cfg.Ambient.Step),
		wheel.WithRand(app.Rand),
		wheel.WithSound(bellSound{out: app.Bell}),
		wheel.WithOnSpinStart(app.beforeSpin),
		wheel.WithOnWinner(app.onWinner),
		wheel.WithLogger(logger.Debug),
	)

	return Model{
		app:         app,
		cfg:         cfg,
		wheel:       controller,
		lastWon:     -1,
		input:       ti,
		importRoot:  ".",
		spinner:     components.NewSpinnerComponent(),
		statusline:  components.NewStatuslineComponent(0),
		helpModal:   components.NewHelpModal(),
		winnerModal: components.NewWinnerModal(),
		confirm:     components.NewConfirmModal(),
	}
}

// Init starts the idle rotation
func (m Model) Init() tea.Cmd {
	return m.startAmbient()
}

func (m Model) startAmbient() tea.Cmd {
	token, ok := m.wheel.StartAmbient()
	if !ok {
		return nil
	}
	return m.ambientTick(token)
}

func (m Model) ambientTick(token wheel.AmbientToken) tea.Cmd {
	return tea.Tick(m.cfg.Ambient.Interval, func(time.Time) tea.Msg {
		return AmbientTickMsg{Token: token}
	})
}

func (m Model) spinFrame(id wheel.SessionID) tea.Cmd {
	return tea.Tick(m.cfg.Frame.Interval, func(t time.Time) tea.Msg {
		return SpinFrameMsg{Session: id, Time: t}
	})
}

func (m Model) geometry() components.DiscGeometry {
	return components.NewDiscGeometry(m.viewport.width, m.viewport.height)
}
