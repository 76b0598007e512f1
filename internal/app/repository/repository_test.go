package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"ship_catalog/internal/app/ds"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)

	// every pooled connection would otherwise get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	rep := New(db, nil, "test-key", time.Hour)
	require.NoError(t, rep.Migrate())
	return rep
}

func testShip(name string, year int) ds.Ship {
	return ds.Ship{
		Name:     name,
		Planet:   "Mars",
		ShipType: ds.ShipTypeMerchant,
		ProdDate: time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC),
		Speed:    0.42,
		CrewSize: 12,
		Rating:   1.5,
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("mongo", "")
	require.Error(t, err)
}

