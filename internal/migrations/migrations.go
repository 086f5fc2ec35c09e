package migrations

import (
	"database/sql"
	"fmt"
)

// Migration represents a single database migration
type Migration struct {
	Version int
	Name    string
	Up      string
}

// AllMigrations contains all database migrations in order
var AllMigrations = []Migration{
	{
		Version: 1,
		Name:    "Add recency index on recent_files",
		Up: `
			CREATE INDEX IF NOT EXISTS idx_recent_files_opened_at ON recent_files(opened_at DESC);
		`,
	},
	{
		Version: 2,
		Name:    "Drop recent entries with relative paths",
		Up: `
			-- Paths are stored absolute; relative ones cannot be reopened reliably
			DELETE FROM recent_files WHERE path NOT LIKE '/%' AND path NOT LIKE '_:%';
		`,
	},
}

// InitSchema creates the tables used by tabpad.
// This must be called before running migrations to ensure all tables exist
func InitSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS recent_files (
		path TEXT PRIMARY KEY,
		opened_at DATETIME NOT NULL,
		open_count INTEGER NOT NULL DEFAULT 1
	);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

// Run executes all pending migrations on the database
func Run(db *sql.DB) error {
	// Initialize schema first to ensure all tables exist
	if err := InitSchema(db); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion, err := GetCurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	for _, migration := range AllMigrations {
		if migration.Version <= currentVersion {
			continue
		}
		if err := apply(db, migration); err != nil {
			return err
		}
	}

	return nil
}

// apply runs one migration and records it in the same transaction.
func apply(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", migration.Version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(migration.Up); err != nil {
		return fmt.Errorf("failed to apply migration %d (%s): %w", migration.Version, migration.Name, err)
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
		migration.Version,
		migration.Name,
	); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}
	return tx.Commit()
}

// GetCurrentVersion returns the current database schema version
func GetCurrentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow(`
		SELECT COALESCE(MAX(version), 0)
		FROM schema_migrations
	`).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	return version, nil
}
