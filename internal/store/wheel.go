package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"namewheel/internal/entries"
	"namewheel/internal/logger"
)

// Storage keys for the two persisted documents.
const (
	EntriesKey  = "wheel-names"
	SettingsKey = "wheel-settings"
)

// Settings are the user toggles persisted next to the entry list.
type Settings struct {
	RemoveAfterWin    bool `json:"removeAfterWin" jsonschema_description:"Remove the winning entry from the list after each spin"`
	DarkMode          bool `json:"darkMode" jsonschema_description:"Render the wheel with the dark theme"`
	ShuffleBeforeSpin bool `json:"shuffleBeforeSpin" jsonschema_description:"Shuffle the entries each time a spin starts"`
}

// DefaultSettings mirrors a fresh install.
func DefaultSettings() Settings {
	return Settings{RemoveAfterWin: true}
}

// LoadEntries returns the persisted list, or the defaults when nothing is
// stored or the stored value is unusable. Only storage failures are errors.
func LoadEntries(ctx context.Context, kv KV) ([]string, error) {
	raw, ok, err := kv.Get(ctx, EntriesKey)
	if err != nil {
		return slices.Clone(entries.Defaults), err
	}
	if !ok {
		return slices.Clone(entries.Defaults), nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		logger.Error("Malformed %s, using defaults: %v", EntriesKey, err)
		return slices.Clone(entries.Defaults), nil
	}
	valid := names[:0]
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			valid = append(valid, name)
		}
	}
	if len(valid) != len(names) {
		logger.Info("Dropped %d blank stored entries", len(names)-len(valid))
	}
	return valid, nil
}

func SaveEntries(ctx context.Context, kv KV, names []string) error {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	return kv.Put(ctx, EntriesKey, string(data))
}

// LoadSettings returns the persisted settings, falling back to defaults
// for a missing or malformed document.
func LoadSettings(ctx context.Context, kv KV) (Settings, error) {
	raw, ok, err := kv.Get(ctx, SettingsKey)
	if err != nil {
		return DefaultSettings(), err
	}
	if !ok {
		return DefaultSettings(), nil
	}

	s := DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		logger.Error("Malformed %s, using defaults: %v", SettingsKey, err)
		return DefaultSettings(), nil
	}
	return s, nil
}

func SaveSettings(ctx context.Context, kv KV, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return kv.Put(ctx, SettingsKey, string(data))
}
