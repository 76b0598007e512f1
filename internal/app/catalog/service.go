package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"ship_catalog/internal/app/ds"
)

// Store is the persistence the catalog runs against. GetShip reports a
// missing id with ErrNotFound; GetShips returns ships in id order.
type Store interface {
	GetShips(ctx context.Context) ([]ds.Ship, error)
	GetShip(ctx context.Context, id int64) (ds.Ship, error)
	CreateShip(ctx context.Context, ship *ds.Ship) error
	UpdateShip(ctx context.Context, ship *ds.Ship) error
	DeleteShip(ctx context.Context, id int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every stored ship matching c.
func (s *Service) List(ctx context.Context, c Criteria) ([]ds.Ship, error) {
	ships, err := s.store.GetShips(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ships: %w", err)
	}
	return Filter(ships, c), nil
}

func (s *Service) Count(ctx context.Context, c Criteria) (int, error) {
	ships, err := s.List(ctx, c)
	if err != nil {
		return 0, err
	}
	return len(ships), nil
}

// Page lists matching ships, sorts them by order and cuts one page.
func (s *Service) Page(ctx context.Context, c Criteria, order Order, page Page) ([]ds.Ship, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	ships, err := s.List(ctx, c)
	if err != nil {
		return nil, err
	}
	return Paginate(ships, order, page), nil
}

func (s *Service) Get(ctx context.Context, id int64) (ds.Ship, error) {
	if err := checkID(id); err != nil {
		return ds.Ship{}, err
	}
	ship, err := s.store.GetShip(ctx, id)
	if err != nil {
		return ds.Ship{}, fmt.Errorf("get ship %d: %w", id, err)
	}
	return ship, nil
}

// Create validates c, derives the rating and stores a new ship. The store
// assigns the id.
func (s *Service) Create(ctx context.Context, c Candidate) (ds.Ship, error) {
	if c.IsUsed == nil {
		used := false
		c.IsUsed = &used
	}
	if err := Validate(c); err != nil {
		logrus.WithError(err).Debug("ship rejected on create")
		return ds.Ship{}, err
	}

	var ship ds.Ship
	c.apply(&ship)
	if err := s.store.CreateShip(ctx, &ship); err != nil {
		return ds.Ship{}, fmt.Errorf("create ship: %w", err)
	}
	logrus.WithFields(logrus.Fields{"ship_id": ship.ShipID, "rating": ship.Rating}).Info("ship created")
	return ship, nil
}

// Update merges the non-nil fields of patch onto the stored ship, validates
// the result and saves it. Nothing is written when validation fails.
func (s *Service) Update(ctx context.Context, id int64, patch Candidate) (ds.Ship, error) {
	ship, err := s.Get(ctx, id)
	if err != nil {
		return ds.Ship{}, err
	}

	merged := candidateOf(ship).merge(patch)
	if err := Validate(merged); err != nil {
		logrus.WithError(err).WithField("ship_id", id).Debug("ship rejected on update")
		return ds.Ship{}, err
	}

	merged.apply(&ship)
	if err := s.store.UpdateShip(ctx, &ship); err != nil {
		return ds.Ship{}, fmt.Errorf("update ship %d: %w", id, err)
	}
	logrus.WithFields(logrus.Fields{"ship_id": id, "rating": ship.Rating}).Info("ship updated")
	return ship, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteShip(ctx, id); err != nil {
		return fmt.Errorf("delete ship %d: %w", id, err)
	}
	logrus.WithField("ship_id", id).Info("ship deleted")
	return nil
}

// AttachImage records objectName as the ship's photo and returns the updated
// ship together with the object name it replaced.
func (s *Service) AttachImage(ctx context.Context, id int64, objectName string) (ds.Ship, string, error) {
	ship, err := s.Get(ctx, id)
	if err != nil {
		return ds.Ship{}, "", err
	}
	previous := ship.PhotoURL
	ship.PhotoURL = objectName
	if err := s.store.UpdateShip(ctx, &ship); err != nil {
		return ds.Ship{}, "", fmt.Errorf("attach image to ship %d: %w", id, err)
	}
	return ship, previous, nil
}

func checkID(id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: ship id %d", ErrInvalidArgument, id)
	}
	return nil
}
