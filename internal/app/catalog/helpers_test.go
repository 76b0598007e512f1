package catalog_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"ship_catalog/internal/app/catalog"
	"ship_catalog/internal/app/ds"
)

func strPtr(s string) *string        { return &s }
func intPtr(i int) *int              { return &i }
func floatPtr(f float64) *float64    { return &f }
func boolPtr(b bool) *bool           { return &b }
func timePtr(t time.Time) *time.Time { return &t }
func typePtr(t ds.ShipType) *ds.ShipType {
	return &t
}

func yearDate(year int) time.Time {
	return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func validCandidate() catalog.Candidate {
	return catalog.Candidate{
		Name:     strPtr("Orion"),
		Planet:   strPtr("Mars"),
		ShipType: typePtr(ds.ShipTypeTransport),
		ProdDate: timePtr(yearDate(3000)),
		Speed:    floatPtr(0.5),
		CrewSize: intPtr(120),
	}
}

// memStore is an in-memory catalog.Store.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	ships  map[int64]ds.Ship
	writes int
	err    error
}

func newMemStore() *memStore {
	return &memStore{ships: make(map[int64]ds.Ship)}
}

func (m *memStore) GetShips(ctx context.Context) ([]ds.Ship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]ds.Ship, 0, len(m.ships))
	for _, s := range m.ships {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b ds.Ship) int { return int(a.ShipID - b.ShipID) })
	return out, nil
}

func (m *memStore) GetShip(ctx context.Context, id int64) (ds.Ship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.ships[id]
	if !ok {
		return ds.Ship{}, catalog.ErrNotFound
	}
	return s, nil
}

func (m *memStore) CreateShip(ctx context.Context, ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	ship.ShipID = m.nextID
	m.ships[ship.ShipID] = *ship
	m.writes++
	return nil
}

func (m *memStore) UpdateShip(ctx context.Context, ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.ships[ship.ShipID] = *ship
	m.writes++
	return nil
}

func (m *memStore) DeleteShip(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ships, id)
	m.writes++
	return nil
}

var errStoreDown = errors.New("store down")
