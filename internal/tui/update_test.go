package tui

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"namewheel/internal/config"
	"namewheel/internal/entries"
	"namewheel/internal/store"
	"namewheel/internal/wheel"
)

func newTestModel(t *testing.T, names ...string) (Model, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	app := &App{
		List:     entries.New(names),
		Settings: store.DefaultSettings(),
		KV:       kv,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Bell:     io.Discard,
	}
	m := NewModel(app, config.Default())
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, kv
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// finishSpin delivers the frame that lands after the spin's duration.
func finishSpin(t *testing.T, m Model) Model {
	t.Helper()
	s, ok := m.wheel.Session()
	if !ok {
		t.Fatal("no active session")
	}
	return send(t, m, SpinFrameMsg{Session: s.ID, Time: s.StartTime.Add(s.Duration)})
}

func savedNames(t *testing.T, kv store.KV) []string {
	t.Helper()
	names, err := store.LoadEntries(context.Background(), kv)
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	return names
}

func TestSpinKeyRunsSpinAndAnnouncesWinner(t *testing.T) {
	m, kv := newTestModel(t, "A", "B", "C", "D")

	m = send(t, m, key(" "))
	if m.wheel.State() != wheel.Spinning {
		t.Fatalf("state = %v, want spinning", m.wheel.State())
	}

	m = finishSpin(t, m)
	if m.wheel.State() != wheel.Idle {
		t.Fatalf("state = %v, want idle", m.wheel.State())
	}
	if !m.winnerModal.IsVisible() {
		t.Fatal("winner modal not shown")
	}
	winner := m.winnerModal.Winner()
	if !strings.Contains("ABCD", winner) || winner == "" {
		t.Fatalf("winner = %q", winner)
	}

	// Remove-after-win is on by default.
	if m.app.List.Len() != 3 {
		t.Fatalf("list has %d entries, want 3", m.app.List.Len())
	}
	for _, n := range savedNames(t, kv) {
		if n == winner {
			t.Errorf("winner %q still persisted", winner)
		}
	}

	m = send(t, m, key("esc"))
	if m.winnerModal.IsVisible() {
		t.Error("winner modal still visible after esc")
	}
}

func TestWinnerKeptWhenRemovalDisabled(t *testing.T) {
	m, _ := newTestModel(t, "A", "B", "C")
	m.app.Settings.RemoveAfterWin = false

	m = finishSpin(t, send(t, m, key(" ")))
	if m.app.List.Len() != 3 {
		t.Fatalf("list has %d entries, want 3", m.app.List.Len())
	}
	if m.lastWon < 0 || m.app.List.Entries()[m.lastWon] != m.winnerModal.Winner() {
		t.Errorf("lastWon = %d does not point at %q", m.lastWon, m.winnerModal.Winner())
	}
}

func TestSpinNeedsTwoEntries(t *testing.T) {
	m, _ := newTestModel(t, "Solo")

	m = send(t, m, key(" "))
	if m.wheel.State() != wheel.Idle {
		t.Fatalf("state = %v, want idle", m.wheel.State())
	}
	msg := m.statusline.Message()
	if msg == nil || !strings.Contains(msg.Text, "two names") {
		t.Fatalf("status = %+v", msg)
	}
}

func TestEditsBlockedWhileSpinning(t *testing.T) {
	m, _ := newTestModel(t, "A", "B")
	m = send(t, m, key(" "))

	for _, k := range []string{"a", "c", "s", "f", "r"} {
		m = send(t, m, key(k))
	}
	if m.inputMode != inputNone || m.confirm.IsVisible() {
		t.Fatal("edit prompt opened during spin")
	}
	if got := m.app.List.Entries(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("list changed during spin: %v", got)
	}
	if !m.app.Settings.RemoveAfterWin {
		t.Error("setting toggled during spin")
	}
}

func TestStaleFrameIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, "A", "B")
	m = send(t, m, key(" "))
	before := m.wheel.Angle()

	stale := wheel.SessionID(uuid.New())
	m = send(t, m, SpinFrameMsg{Session: stale, Time: time.Now().Add(time.Hour)})
	if m.wheel.State() != wheel.Spinning || m.wheel.Angle() != before {
		t.Errorf("stale frame applied: state %v angle %v", m.wheel.State(), m.wheel.Angle())
	}
}

func TestAddNameThroughInput(t *testing.T) {
	m, kv := newTestModel(t, "A")

	m = send(t, m, key("a"))
	if m.inputMode != inputAdd {
		t.Fatalf("inputMode = %v, want add", m.inputMode)
	}
	m = send(t, m, key("Zed"))
	m = send(t, m, key("enter"))
	m = send(t, m, key("esc"))

	if m.inputMode != inputNone {
		t.Error("input still open after esc")
	}
	names := savedNames(t, kv)
	if len(names) != 2 || names[1] != "Zed" {
		t.Errorf("saved = %v", names)
	}
}

func TestRemoveAndClearNeedConfirmation(t *testing.T) {
	m, kv := newTestModel(t, "A", "B", "C")

	m = send(t, m, key("down"))
	m = send(t, m, key("d"))
	m = send(t, m, key("n"))
	if m.app.List.Len() != 3 {
		t.Fatal("remove applied without confirmation")
	}

	m = send(t, m, key("d"))
	m = send(t, m, key("y"))
	if got := m.app.List.Entries(); len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("after remove = %v", got)
	}

	m = send(t, m, key("c"))
	m = send(t, m, key("y"))
	if m.app.List.Len() != 0 {
		t.Fatalf("after clear = %v", m.app.List.Entries())
	}
	if names := savedNames(t, kv); len(names) != 0 {
		t.Errorf("saved = %v, want empty", names)
	}
}

func TestImportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("Xavier\n\n  Yuki \nZoe\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, kv := newTestModel(t, "A")

	m = send(t, m, key("i"))
	m.input.SetValue(path)
	m = send(t, m, key("enter"))

	want := []string{"Xavier", "Yuki", "Zoe"}
	got := savedNames(t, kv)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("saved = %v, want %v", got, want)
	}
}

func TestSettingsTogglesPersist(t *testing.T) {
	m, kv := newTestModel(t, "A", "B")

	m = send(t, m, key("r"))
	m = send(t, m, key("p"))
	m = send(t, m, key("t"))

	s, err := store.LoadSettings(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	want := store.Settings{RemoveAfterWin: false, ShuffleBeforeSpin: true, DarkMode: true}
	if s != want || m.app.Settings != want {
		t.Errorf("settings = %+v (saved %+v), want %+v", m.app.Settings, s, want)
	}
}

func TestMouseDragReleaseSpins(t *testing.T) {
	m, _ := newTestModel(t, "A", "B", "C")
	g := m.geometry()

	m = send(t, m, tea.MouseMsg{X: g.CenterX + 10, Y: g.CenterY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.wheel.State() != wheel.Dragging {
		t.Fatalf("state = %v, want dragging", m.wheel.State())
	}
	m = send(t, m, tea.MouseMsg{X: g.CenterX, Y: g.CenterY - 8, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: g.CenterX, Y: g.CenterY - 8, Action: tea.MouseActionRelease})

	if m.wheel.State() != wheel.Spinning {
		t.Fatalf("state = %v, want spinning", m.wheel.State())
	}
}

func TestMouseClickWithoutPullDoesNotSpin(t *testing.T) {
	m, _ := newTestModel(t, "A", "B", "C")
	g := m.geometry()

	press := tea.MouseMsg{X: g.CenterX + 4, Y: g.CenterY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(t, m, press)
	release := press
	release.Action = tea.MouseActionRelease
	m = send(t, m, release)

	if m.wheel.State() != wheel.Idle {
		t.Errorf("state = %v, want idle", m.wheel.State())
	}
}

func TestAmbientTickRotatesOnlyWithCurrentToken(t *testing.T) {
	m, _ := newTestModel(t, "A", "B")
	token, ok := m.wheel.StartAmbient()
	if !ok {
		t.Fatal("ambient refused while idle")
	}
	before := m.wheel.Angle()

	m = send(t, m, AmbientTickMsg{Token: wheel.AmbientToken(uuid.New())})
	if m.wheel.Angle() != before {
		t.Fatal("stale ambient token rotated the disc")
	}
	m = send(t, m, AmbientTickMsg{Token: token})
	if m.wheel.Angle() <= before {
		t.Error("ambient tick did not rotate the disc")
	}
}

func TestViewRendersWheelAndList(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")
	out := m.View()
	for _, want := range []string{"Wheel of Names", "Alice", "Bob", "▼", "? help"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestImportPromptCompletesPaths(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"guests.txt", "team.txt"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(name+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	m, _ := newTestModel(t, "A")
	m.importRoot = root

	m = send(t, m, key("i"))
	m = send(t, m, key("team"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if want := filepath.Join(root, "team.txt"); m.input.Value() != want {
		t.Fatalf("input = %q, want %q", m.input.Value(), want)
	}

	m = send(t, m, key("enter"))
	if got := m.app.List.Entries(); len(got) != 1 || got[0] != "team.txt" {
		t.Errorf("imported %v", got)
	}
}
