package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Storage provides SQLite database access for simulation records.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveSimulation persists a simulation record
func (s *Storage) SaveSimulation(rec *SimulationRecord) error {
	votesJSON, _ := json.Marshal(rec.Votes)
	seatsJSON, _ := json.Marshal(rec.Seats)
	stepsJSON, _ := json.Marshal(rec.Steps)

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `
	INSERT OR REPLACE INTO simulations
	(id, created_at, source, total_seats, threshold, total_votes,
	 party_count, qualified_count, allocated_seats, warning,
	 votes_json, seats_json, steps_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		rec.ID,
		rec.CreatedAt,
		rec.Source,
		rec.TotalSeats,
		rec.Threshold,
		rec.TotalVotes,
		rec.PartyCount,
		rec.QualifiedCount,
		rec.AllocatedSeats,
		rec.Warning,
		string(votesJSON),
		string(seatsJSON),
		string(stepsJSON),
	)

	return err
}

// GetSimulation retrieves a simulation by ID. Returns (nil, nil) when
// no record exists.
func (s *Storage) GetSimulation(id string) (*SimulationRecord, error) {
	query := selectColumns + ` FROM simulations WHERE id = ?`

	row := s.db.QueryRow(query, id)

	rec, err := scanSimulation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListSimulations returns the most recent simulations, newest first
func (s *Storage) ListSimulations(limit int) ([]SimulationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := selectColumns + ` FROM simulations ORDER BY created_at DESC, id LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []SimulationRecord
	for rows.Next() {
		rec, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

// DeleteSimulation removes a simulation. The bool reports whether a
// record existed.
func (s *Storage) DeleteSimulation(id string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM simulations WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// GetStats returns aggregate statistics
func (s *Storage) GetStats() (*Stats, error) {
	stats := &Stats{}

	query := `
	SELECT
		COUNT(*),
		COALESCE(SUM(allocated_seats), 0),
		COALESCE(AVG(party_count), 0),
		COALESCE(MAX(created_at), '')
	FROM simulations
	`

	err := s.db.QueryRow(query).Scan(
		&stats.TotalSimulations,
		&stats.TotalSeatsAllocated,
		&stats.AvgPartyCount,
		&stats.LastCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

const selectColumns = `
	SELECT id, created_at, source, total_seats, threshold, total_votes,
	       party_count, qualified_count, allocated_seats, warning,
	       votes_json, seats_json, steps_json`

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanSimulation reads one simulations row and unmarshals its JSON columns
func scanSimulation(row scanner) (*SimulationRecord, error) {
	rec := &SimulationRecord{}
	var votesJSON, seatsJSON, stepsJSON string

	err := row.Scan(
		&rec.ID,
		&rec.CreatedAt,
		&rec.Source,
		&rec.TotalSeats,
		&rec.Threshold,
		&rec.TotalVotes,
		&rec.PartyCount,
		&rec.QualifiedCount,
		&rec.AllocatedSeats,
		&rec.Warning,
		&votesJSON,
		&seatsJSON,
		&stepsJSON,
	)
	if err != nil {
		return nil, err
	}

	// Unmarshal errors ignored: the columns default to valid empty JSON
	if votesJSON != "" {
		_ = json.Unmarshal([]byte(votesJSON), &rec.Votes)
	}
	if seatsJSON != "" {
		_ = json.Unmarshal([]byte(seatsJSON), &rec.Seats)
	}
	if stepsJSON != "" {
		_ = json.Unmarshal([]byte(stepsJSON), &rec.Steps)
	}

	return rec, nil
}
