package storage

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database schema migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// allMigrations defines all migrations in order
var allMigrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		Up:      migration001InitialSchema,
	},
	{
		Version: 2,
		Name:    "add_warning_column",
		Up:      migration002AddWarningColumn,
	},
	{
		Version: 3,
		Name:    "add_source_index",
		Up:      migration003AddSourceIndex,
	},
}

// runMigrations executes all pending migrations
func (s *Storage) runMigrations() error {
	if err := s.ensureMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := s.getAppliedMigrations()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, migration := range allMigrations {
		if applied[migration.Version] {
			continue
		}

		log.Printf("Running migration %d: %s", migration.Version, migration.Name)

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		_, err = tx.Exec(`
			INSERT INTO schema_migrations (version, name) VALUES (?, ?)
		`, migration.Version, migration.Name)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// ensureMigrationsTable creates the schema_migrations table
func (s *Storage) ensureMigrationsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	_, err := s.db.Exec(query)
	return err
}

// getAppliedMigrations returns a set of applied migration versions
func (s *Storage) getAppliedMigrations() (map[int]bool, error) {
	applied := make(map[int]bool)

	rows, err := s.db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// ================================================================
// MIGRATION FUNCTIONS
// ================================================================

// migration001InitialSchema creates the simulations table
func migration001InitialSchema(db *sql.Tx) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS simulations (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			source TEXT NOT NULL DEFAULT 'votes',
			total_seats INTEGER NOT NULL,
			threshold REAL NOT NULL,
			total_votes INTEGER NOT NULL DEFAULT 0,
			party_count INTEGER NOT NULL DEFAULT 0,
			qualified_count INTEGER NOT NULL DEFAULT 0,
			allocated_seats INTEGER NOT NULL DEFAULT 0,
			votes_json TEXT NOT NULL DEFAULT '{}',
			seats_json TEXT NOT NULL DEFAULT '{}',
			steps_json TEXT NOT NULL DEFAULT '[]'
		)`,

		`CREATE INDEX IF NOT EXISTS idx_simulations_created_at
		 ON simulations(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// migration002AddWarningColumn adds the warning column for the
// percentage-sum advisory carried alongside a stored simulation.
func migration002AddWarningColumn(db *sql.Tx) error {
	query := `ALTER TABLE simulations ADD COLUMN warning TEXT NOT NULL DEFAULT ''`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to add warning column: %w", err)
	}

	return nil
}

// migration003AddSourceIndex indexes the source column so the dashboard
// can filter percentage-driven runs from raw-vote runs.
func migration003AddSourceIndex(db *sql.Tx) error {
	query := `CREATE INDEX IF NOT EXISTS idx_simulations_source
	 ON simulations(source)`

	_, err := db.Exec(query)
	return err
}
