// Package recent remembers which files were opened or saved, most recent first.
package recent

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/tabpad/internal/config"
	"github.com/studiowebux/tabpad/internal/migrations"
)

// DefaultLimit is the number of entries List returns for a non-positive limit.
const DefaultLimit = 20

// Entry is one remembered file.
type Entry struct {
	Path      string
	OpenedAt  time.Time
	OpenCount int
}

// Name returns the file name of the entry.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Manager stores recent files in sqlite.
type Manager struct {
	db  *sql.DB
	now func() time.Time
}

// NewManager opens (creating if needed) the database at dbPath and migrates it.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create recent files directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open recent files database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to recent files database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db, now: time.Now}, nil
}

// Touch records that path was opened or saved now.
func (m *Manager) Touch(path string) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	stamp := m.now().UTC().Format(time.RFC3339Nano)
	_, err := m.db.Exec(`
		INSERT INTO recent_files (path, opened_at, open_count) VALUES (?, ?, 1)
		ON CONFLICT(path) DO UPDATE SET
			opened_at = excluded.opened_at,
			open_count = recent_files.open_count + 1
	`, path, stamp)
	if err != nil {
		return fmt.Errorf("failed to record recent file: %w", err)
	}
	return nil
}

// List returns up to limit entries, most recent first.
func (m *Manager) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := m.db.Query(`
		SELECT path, opened_at, open_count
		FROM recent_files
		ORDER BY opened_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent files: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e     Entry
			stamp string
		)
		if err := rows.Scan(&e.Path, &stamp, &e.OpenCount); err != nil {
			return nil, fmt.Errorf("failed to scan recent file: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
			e.OpenedAt = t.Local()
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Remove forgets path.
func (m *Manager) Remove(path string) error {
	if _, err := m.db.Exec("DELETE FROM recent_files WHERE path = ?", path); err != nil {
		return fmt.Errorf("failed to remove recent file: %w", err)
	}
	return nil
}

// Prune removes entries beyond the keep most recent ones.
func (m *Manager) Prune(keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := m.db.Exec(`
		DELETE FROM recent_files WHERE path NOT IN (
			SELECT path FROM recent_files ORDER BY opened_at DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune recent files: %w", err)
	}
	return res.RowsAffected()
}

// Clear forgets every file.
func (m *Manager) Clear() error {
	if _, err := m.db.Exec("DELETE FROM recent_files"); err != nil {
		return fmt.Errorf("failed to clear recent files: %w", err)
	}
	return nil
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}

type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Path }
func (s entrySource) Len() int            { return len(s) }

// Filter ranks entries by fuzzy match of query against their path. An empty
// query returns entries unchanged.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}
	matches := fuzzy.FindFrom(query, entrySource(entries))
	out := make([]Entry, 0, len(matches))
	for _, match := range matches {
		out = append(out, entries[match.Index])
	}
	return out
}
