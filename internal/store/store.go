// Package store persists user preferences in a local SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const (
	tableSettings = "settings"

	colKey   = "key"
	colValue = "value"

	keyDownloadDir = "download_dir"
)

// Store wraps the preference database.
type Store struct {
	DB *sql.DB
}

// InitStore opens (creating if needed) the preference database at path.
func InitStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	s := &Store{DB: db}
	if err := s.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) initTables() error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := tx.Exec(query); err != nil {
		return err
	}

	return tx.Commit()
}

// SetDownloadDir persists the custom output directory preference.
func (s *Store) SetDownloadDir(dir string) error {
	query := squirrel.
		Insert(tableSettings).
		Columns(colKey, colValue).
		Values(keyDownloadDir, dir).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		RunWith(s.DB)

	if _, err := query.Exec(); err != nil {
		return fmt.Errorf("failed to persist download directory: %w", err)
	}
	return nil
}

// DownloadDir returns the persisted custom output directory, or the
// empty string when none is set.
func (s *Store) DownloadDir() (string, error) {
	query := squirrel.
		Select(colValue).
		From(tableSettings).
		Where(squirrel.Eq{colKey: keyDownloadDir}).
		RunWith(s.DB)

	var dir string
	if err := query.QueryRow().Scan(&dir); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read download directory: %w", err)
	}
	return dir, nil
}

// ClearDownloadDir removes the custom output directory preference.
func (s *Store) ClearDownloadDir() error {
	query := squirrel.
		Delete(tableSettings).
		Where(squirrel.Eq{colKey: keyDownloadDir}).
		RunWith(s.DB)

	if _, err := query.Exec(); err != nil {
		return fmt.Errorf("failed to clear download directory: %w", err)
	}
	return nil
}
