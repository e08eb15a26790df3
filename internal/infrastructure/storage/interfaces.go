package storage

// Repository defines the complete storage interface.
// This interface allows swapping implementations (SQLite, PostgreSQL, etc.)
// and makes testing with mocks straightforward.
type Repository interface {
	SimulationRepository
	Close() error
}

// SimulationRepository handles simulation record operations
type SimulationRepository interface {
	// SaveSimulation persists a simulation record
	SaveSimulation(rec *SimulationRecord) error

	// GetSimulation retrieves a simulation by ID. Returns (nil, nil)
	// when no record exists.
	GetSimulation(id string) (*SimulationRecord, error)

	// ListSimulations returns the most recent simulations, newest first
	ListSimulations(limit int) ([]SimulationRecord, error)

	// DeleteSimulation removes a simulation. The bool reports whether a
	// record existed.
	DeleteSimulation(id string) (bool, error)

	// GetStats returns aggregate statistics
	GetStats() (*Stats, error)
}
