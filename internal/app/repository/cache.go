package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"ship_catalog/internal/app/catalog"
	"ship_catalog/internal/app/ds"
)

// CachedStore keeps single-ship lookups in memory in front of another store.
// Listings always go to the underlying store. The cache is per process, so
// writes made by other instances show up only after ttl.
type CachedStore struct {
	next  catalog.Store
	cache *cache.Cache
}

var _ catalog.Store = (*CachedStore)(nil)

func NewCachedStore(next catalog.Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func shipKey(id int64) string {
	return "ship:" + strconv.FormatInt(id, 10)
}

func (s *CachedStore) GetShips(ctx context.Context) ([]ds.Ship, error) {
	return s.next.GetShips(ctx)
}

func (s *CachedStore) GetShip(ctx context.Context, id int64) (ds.Ship, error) {
	if v, ok := s.cache.Get(shipKey(id)); ok {
		return v.(ds.Ship), nil
	}
	ship, err := s.next.GetShip(ctx, id)
	if err != nil {
		return ds.Ship{}, err
	}
	s.cache.SetDefault(shipKey(id), ship)
	return ship, nil
}

func (s *CachedStore) CreateShip(ctx context.Context, ship *ds.Ship) error {
	if err := s.next.CreateShip(ctx, ship); err != nil {
		return err
	}
	s.cache.SetDefault(shipKey(ship.ShipID), *ship)
	return nil
}

func (s *CachedStore) UpdateShip(ctx context.Context, ship *ds.Ship) error {
	if err := s.next.UpdateShip(ctx, ship); err != nil {
		s.cache.Delete(shipKey(ship.ShipID))
		return err
	}
	s.cache.SetDefault(shipKey(ship.ShipID), *ship)
	return nil
}

func (s *CachedStore) DeleteShip(ctx context.Context, id int64) error {
	s.cache.Delete(shipKey(id))
	return s.next.DeleteShip(ctx, id)
}
