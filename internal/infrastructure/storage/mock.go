package storage

import (
	"sort"
	"sync"
	"time"
)

// MockRepository is an in-memory implementation of Repository for testing.
// It stores all data in maps, making tests fast and isolated.
type MockRepository struct {
	mu      sync.RWMutex
	records map[string]*SimulationRecord

	// Hooks for test assertions
	SaveSimulationCalled bool
	LastSavedRecord      *SimulationRecord

	// Error injection for testing error paths
	SaveSimulationErr error
	GetSimulationErr  error
	ListErr           error
	DeleteErr         error
	StatsErr          error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		records: make(map[string]*SimulationRecord),
	}
}

// SaveSimulation stores the record in memory
func (m *MockRepository) SaveSimulation(rec *SimulationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveSimulationCalled = true
	if m.SaveSimulationErr != nil {
		return m.SaveSimulationErr
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	copied := *rec
	m.records[rec.ID] = &copied
	m.LastSavedRecord = &copied
	return nil
}

// GetSimulation retrieves a record by ID, (nil, nil) when missing
func (m *MockRepository) GetSimulation(id string) (*SimulationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetSimulationErr != nil {
		return nil, m.GetSimulationErr
	}

	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}

	copied := *rec
	return &copied, nil
}

// ListSimulations returns stored records, newest first
func (m *MockRepository) ListSimulations(limit int) ([]SimulationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if limit <= 0 {
		limit = 20
	}

	records := make([]SimulationRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, *rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})

	if len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

// DeleteSimulation removes a record, reporting whether it existed
func (m *MockRepository) DeleteSimulation(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return false, m.DeleteErr
	}

	_, ok := m.records[id]
	delete(m.records, id)
	return ok, nil
}

// GetStats aggregates over the in-memory records
func (m *MockRepository) GetStats() (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.StatsErr != nil {
		return nil, m.StatsErr
	}

	stats := &Stats{}
	var partySum int
	var last time.Time

	for _, rec := range m.records {
		stats.TotalSimulations++
		stats.TotalSeatsAllocated += rec.AllocatedSeats
		partySum += rec.PartyCount
		if rec.CreatedAt.After(last) {
			last = rec.CreatedAt
		}
	}

	if stats.TotalSimulations > 0 {
		stats.AvgPartyCount = float64(partySum) / float64(stats.TotalSimulations)
		stats.LastCreatedAt = last.Format(time.RFC3339)
	}

	return stats, nil
}

// Close is a no-op for the mock
func (m *MockRepository) Close() error {
	return nil
}
