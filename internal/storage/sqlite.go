// Package storage provides SQLite-based persistence for user settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for settings persistence.
type Store struct {
	db *sql.DB
}

// Settings are the knobs persisted between runs. Gameplay state is not
// saved; only what the player set on the settings screen.
type Settings struct {
	Volume     float64
	Track      int
	Difficulty string
}

// DefaultSettings returns the values a fresh database reports.
func DefaultSettings() Settings {
	return Settings{Volume: 0.5, Track: 0, Difficulty: "normal"}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

const (
	keyVolume     = "volume"
	keyTrack      = "track"
	keyDifficulty = "difficulty"
)

// LoadSettings reads the persisted settings. Missing or malformed keys
// fall back to their defaults, so a partially written database still
// loads.
func (s *Store) LoadSettings() (Settings, error) {
	settings := DefaultSettings()

	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return settings, fmt.Errorf("storage: cannot read settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, fmt.Errorf("storage: cannot scan setting: %w", err)
		}

		switch key {
		case keyVolume:
			if v, err := strconv.ParseFloat(value, 64); err == nil && v >= 0 && v <= 1 {
				settings.Volume = v
			}
		case keyTrack:
			if t, err := strconv.Atoi(value); err == nil && t >= 0 {
				settings.Track = t
			}
		case keyDifficulty:
			settings.Difficulty = value
		}
	}
	if err := rows.Err(); err != nil {
		return settings, fmt.Errorf("storage: settings read failed: %w", err)
	}

	return settings, nil
}

// SaveSettings upserts all settings in one transaction.
func (s *Store) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	pairs := []struct {
		key   string
		value string
	}{
		{keyVolume, strconv.FormatFloat(settings.Volume, 'f', -1, 64)},
		{keyTrack, strconv.Itoa(settings.Track)},
		{keyDifficulty, settings.Difficulty},
	}

	for _, p := range pairs {
		if _, err := tx.Exec(upsert, p.key, p.value); err != nil {
			return fmt.Errorf("storage: cannot save %s: %w", p.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit settings: %w", err)
	}
	return nil
}
