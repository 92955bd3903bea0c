package store

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"namewheel/internal/entries"
)

func openSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "wheel.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKVImplementations(t *testing.T) {
	ctx := context.Background()
	for name, kv := range map[string]KV{"sqlite": openSQLite(t), "memory": NewMemory()} {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := kv.Get(ctx, "missing"); ok || err != nil {
				t.Fatalf("Get(missing) = %v, %v", ok, err)
			}
			if err := kv.Put(ctx, "k", "v1"); err != nil {
				t.Fatal(err)
			}
			if err := kv.Put(ctx, "k", "v2"); err != nil {
				t.Fatal(err)
			}
			v, ok, err := kv.Get(ctx, "k")
			if err != nil || !ok || v != "v2" {
				t.Errorf("Get(k) = %q, %v, %v; want v2", v, ok, err)
			}
		})
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wheel.db")
	s, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveEntries(ctx, s, []string{"Ann", "Ben"}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := LoadEntries(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"Ann", "Ben"}) {
		t.Errorf("entries = %v", got)
	}
}

func TestLoadEntriesFallsBack(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		stored *string
		want   []string
	}{
		{"missing", nil, entries.Defaults},
		{"malformed", ptr(`{"not":"a list"`), entries.Defaults},
		{"blank entries dropped", ptr(`["A"," ","B"]`), []string{"A", "B"}},
		{"empty list kept", ptr(`[]`), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemory()
			if tt.stored != nil {
				kv.Put(ctx, EntriesKey, *tt.stored)
			}
			got, err := LoadEntries(ctx, kv)
			if err != nil {
				t.Fatalf("LoadEntries: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("entries = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettingsRoundTripAndFallback(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	s, err := LoadSettings(ctx, kv)
	if err != nil || s != DefaultSettings() {
		t.Fatalf("fresh settings = %+v, %v", s, err)
	}
	if !s.RemoveAfterWin || s.DarkMode {
		t.Errorf("defaults = %+v", s)
	}

	want := Settings{RemoveAfterWin: false, DarkMode: true, ShuffleBeforeSpin: true}
	if err := SaveSettings(ctx, kv, want); err != nil {
		t.Fatal(err)
	}
	if got, _ := LoadSettings(ctx, kv); got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}

	kv.Put(ctx, SettingsKey, "nonsense")
	if got, _ := LoadSettings(ctx, kv); got != DefaultSettings() {
		t.Errorf("malformed settings = %+v, want defaults", got)
	}

	// Older documents lack shuffleBeforeSpin.
	kv.Put(ctx, SettingsKey, `{"removeAfterWin":false,"darkMode":true}`)
	if got, _ := LoadSettings(ctx, kv); got != (Settings{DarkMode: true}) {
		t.Errorf("partial settings = %+v", got)
	}
}

type brokenKV struct{}

func (brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk gone")
}
func (brokenKV) Put(context.Context, string, string) error { return errors.New("disk gone") }

func TestStorageErrorsSurfaceWithDefaults(t *testing.T) {
	ctx := context.Background()
	names, err := LoadEntries(ctx, brokenKV{})
	if err == nil || !slices.Equal(names, entries.Defaults) {
		t.Errorf("LoadEntries = %v, %v", names, err)
	}
	s, err := LoadSettings(ctx, brokenKV{})
	if err == nil || s != DefaultSettings() {
		t.Errorf("LoadSettings = %+v, %v", s, err)
	}
	if err := SaveEntries(ctx, brokenKV{}, nil); err == nil {
		t.Error("SaveEntries swallowed error")
	}
}

func ptr(s string) *string { return &s }
