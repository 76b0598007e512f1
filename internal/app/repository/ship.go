package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ship_catalog/internal/app/catalog"
	"ship_catalog/internal/app/ds"
)

var _ catalog.Store = (*Repository)(nil)

// GetShips returns every ship ordered by id.
func (r *Repository) GetShips(ctx context.Context) ([]ds.Ship, error) {
	var ships []ds.Ship
	err := r.db.WithContext(ctx).Order("ship_id asc").Find(&ships).Error
	if err != nil {
		return nil, fmt.Errorf("find ships: %w", err)
	}
	return ships, nil
}

func (r *Repository) GetShip(ctx context.Context, id int64) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.WithContext(ctx).Where("ship_id = ?", id).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Ship{}, catalog.ErrNotFound
	}
	if err != nil {
		return ds.Ship{}, fmt.Errorf("find ship %d: %w", id, err)
	}
	return ship, nil
}

// CreateShip inserts the ship; gorm fills in ShipID.
func (r *Repository) CreateShip(ctx context.Context, ship *ds.Ship) error {
	ship.ShipID = 0
	if err := r.db.WithContext(ctx).Create(ship).Error; err != nil {
		return fmt.Errorf("create ship: %w", err)
	}
	return nil
}

// UpdateShip writes every column, zero values included.
func (r *Repository) UpdateShip(ctx context.Context, ship *ds.Ship) error {
	if err := r.db.WithContext(ctx).Save(ship).Error; err != nil {
		return fmt.Errorf("update ship %d: %w", ship.ShipID, err)
	}
	return nil
}

// DeleteShip removes the row; a missing id is not an error.
func (r *Repository) DeleteShip(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&ds.Ship{}, id).Error; err != nil {
		return fmt.Errorf("delete ship %d: %w", id, err)
	}
	return nil
}
