package theme

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists themes to SQLite.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens or creates a theme database.
// The path should be a file path (e.g., "./themes.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS themes (
			name TEXT PRIMARY KEY,
			revision TEXT NOT NULL,
			updated TEXT NOT NULL,
			doc BLOB NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(name string, doc []byte) (Info, error) {
	if name == "" {
		return Info{}, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Info{}, ErrStoreClosed
	}

	if doc == nil {
		doc = []byte{}
	}
	info := Info{
		Name:     name,
		Revision: uuid.New().String(),
		Updated:  time.Now().UTC(),
		Size:     int64(len(doc)),
	}

	_, err := s.db.Exec(`
		INSERT INTO themes (name, revision, updated, doc)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			revision = excluded.revision,
			updated = excluded.updated,
			doc = excluded.doc
	`, info.Name, info.Revision, info.Updated.Format(time.RFC3339Nano), doc)
	if err != nil {
		return Info{}, fmt.Errorf("save theme: %w", err)
	}
	return info, nil
}

// Load implements Store.
func (s *SQLiteStore) Load(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var doc []byte
	err := s.db.QueryRow(`SELECT doc FROM themes WHERE name = ?`, name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	if doc == nil {
		doc = []byte{}
	}
	return doc, nil
}

// List implements Store.
func (s *SQLiteStore) List() ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT name, revision, updated, LENGTH(doc)
		FROM themes
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	infos := []Info{}
	for rows.Next() {
		var info Info
		var updated string
		if err := rows.Scan(&info.Name, &info.Revision, &updated, &info.Size); err != nil {
			return nil, fmt.Errorf("scan theme info: %w", err)
		}
		info.Updated, err = time.Parse(time.RFC3339Nano, updated)
		if err != nil {
			return nil, fmt.Errorf("parse updated time for theme %q: %w", info.Name, err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate themes: %w", err)
	}
	return infos, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM themes WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
