package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runner.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestFreshStoreReturnsDefaults(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != DefaultSettings() {
		t.Errorf("fresh settings = %+v, want defaults %+v", got, DefaultSettings())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := Settings{Volume: 0.3, Track: 1, Difficulty: "hard"}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSettings(Settings{Volume: 0.9, Track: 0, Difficulty: "easy"}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	want := Settings{Volume: 0.1, Track: 1, Difficulty: "normal"}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want second save %+v", got, want)
	}
}

func TestMalformedValuesFallBack(t *testing.T) {
	store := openTestStore(t)

	// Write garbage directly, bypassing SaveSettings.
	for _, pair := range [][2]string{
		{"volume", "not-a-number"},
		{"track", "-3"},
	} {
		if _, err := store.db.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)`, pair[0], pair[1]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	def := DefaultSettings()
	if got.Volume != def.Volume {
		t.Errorf("volume = %v from garbage, want default %v", got.Volume, def.Volume)
	}
	if got.Track != def.Track {
		t.Errorf("track = %v from garbage, want default %v", got.Track, def.Track)
	}
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	want := Settings{Volume: 0.7, Track: 1, Difficulty: "easy"}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("settings after reopen = %+v, want %+v", got, want)
	}
}
