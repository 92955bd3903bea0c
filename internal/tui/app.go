package tui

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"namewheel/internal/entries"
	"namewheel/internal/logger"
	"namewheel/internal/store"
	"namewheel/internal/wheel"
)

const saveTimeout = 2 * time.Second

// App holds the collaborators shared by every copy of the Model: the entry
// list, the persisted settings and the storage they are saved to.
type App struct {
	List     *entries.List
	Settings store.Settings
	KV       store.KV
	Rand     *rand.Rand
	Bell     io.Writer

	// lastWinner is set by the winner sink and consumed by Update.
	lastWinner *wonEntry
}

type wonEntry struct {
	wheel.Winner
	Hue     float64
	Removed bool
}

// Load builds an App from storage. Storage errors are logged and the
// defaults are used.
func Load(ctx context.Context, kv store.KV) *App {
	names, err := store.LoadEntries(ctx, kv)
	if err != nil {
		logger.Error("Failed to load entries: %v", err)
	}
	settings, err := store.LoadSettings(ctx, kv)
	if err != nil {
		logger.Error("Failed to load settings: %v", err)
	}
	return &App{
		List:     entries.New(names),
		Settings: settings,
		KV:       kv,
		Rand:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
}

func (a *App) saveEntries() error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := store.SaveEntries(ctx, a.KV, a.List.Values()); err != nil {
		logger.Error("Failed to save entries: %v", err)
		return err
	}
	return nil
}

func (a *App) saveSettings() error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := store.SaveSettings(ctx, a.KV, a.Settings); err != nil {
		logger.Error("Failed to save settings: %v", err)
		return err
	}
	return nil
}

// beforeSpin is the controller's spin-start hook.
func (a *App) beforeSpin() {
	if a.Settings.ShuffleBeforeSpin {
		a.List.Shuffle(a.Rand)
		logger.Event("shuffle", a.List.Values())
	}
}

// onWinner is the controller's winner sink.
func (a *App) onWinner(w wheel.Winner) {
	names := a.List.Entries()
	won := &wonEntry{Winner: w, Hue: wheel.HueFor(w.Index, len(names))}
	if a.Settings.RemoveAfterWin && w.Index < len(names) && names[w.Index] == w.Entry {
		if _, ok := a.List.RemoveAt(w.Index); ok {
			won.Removed = true
			a.saveEntries()
		}
	}
	logger.Event("winner", map[string]interface{}{
		"session": w.Session.String(),
		"index":   w.Index,
		"entry":   w.Entry,
		"removed": won.Removed,
	})
	a.lastWinner = won
}

func (a *App) takeWinner() (*wonEntry, bool) {
	w := a.lastWinner
	a.lastWinner = nil
	return w, w != nil
}

// bellSound rings the terminal bell for the win cue. The terminal has no
// way to loop a spin sound, so that cue is silent.
type bellSound struct {
	out io.Writer
}

func (b bellSound) Play(cue wheel.Cue) {
	if cue == wheel.WinCue && b.out != nil {
		io.WriteString(b.out, "\a")
	}
}

func (b bellSound) Stop(wheel.Cue) {}
