// Package storage persists per-player save snapshots in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for save persistence.
type Store struct {
	db *sql.DB
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
		CREATE TABLE IF NOT EXISTS saves (
			player_name TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			state TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame upserts the snapshot for the given player name.
func (s *Store) SaveGame(playerName string, state SaveState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO saves (player_name, version, state, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player_name) DO UPDATE SET
			version = excluded.version,
			state = excluded.state,
			updated_at = CURRENT_TIMESTAMP`,
		playerName, state.Version, string(blob),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game for %s: %w", playerName, err)
	}
	return nil
}

// LoadGame retrieves the snapshot for the given player name. The second
// return value is false when no save exists.
func (s *Store) LoadGame(playerName string) (SaveState, bool, error) {
	var blob string
	err := s.db.QueryRow(
		"SELECT state FROM saves WHERE player_name = ?", playerName,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return SaveState{}, false, nil
	}
	if err != nil {
		return SaveState{}, false, fmt.Errorf("storage: cannot load game for %s: %w", playerName, err)
	}

	var state SaveState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return SaveState{}, false, fmt.Errorf("storage: cannot decode save for %s: %w", playerName, err)
	}
	return state, true, nil
}

// Players lists every player name with a save, most recently updated first.
func (s *Store) Players() ([]string, error) {
	rows, err := s.db.Query(
		"SELECT player_name FROM saves ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return names, nil
}

// DeleteGame removes a player's save. Missing saves are not an error.
func (s *Store) DeleteGame(playerName string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE player_name = ?", playerName)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save for %s: %w", playerName, err)
	}
	return nil
}
