package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ship_catalog/internal/app/catalog"
)

func TestCachedStore_ServesLookupsFromCache(t *testing.T) {
	ctx := context.Background()
	rep := setupTestRepo(t)
	store := NewCachedStore(rep, time.Minute)

	ship := testShip("Orion", 3000)
	require.NoError(t, store.CreateShip(ctx, &ship))

	// bypass the cache to prove the next read does not hit the database
	require.NoError(t, rep.DB().Exec("UPDATE ships SET name = ? WHERE ship_id = ?", "Changed", ship.ShipID).Error)

	got, err := store.GetShip(ctx, ship.ShipID)
	require.NoError(t, err)
	assert.Equal(t, "Orion", got.Name)

	got.Name = "Renamed"
	require.NoError(t, store.UpdateShip(ctx, &got))
	got, err = store.GetShip(ctx, ship.ShipID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, store.DeleteShip(ctx, ship.ShipID))
	_, err = store.GetShip(ctx, ship.ShipID)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestCachedStore_ListsBypassCache(t *testing.T) {
	ctx := context.Background()
	rep := setupTestRepo(t)
	store := NewCachedStore(rep, time.Minute)

	ship := testShip("Orion", 3000)
	require.NoError(t, rep.CreateShip(ctx, &ship))

	ships, err := store.GetShips(ctx)
	require.NoError(t, err)
	assert.Len(t, ships, 1)
}

func TestCachedStore_ExpiresEntries(t *testing.T) {
	ctx := context.Background()
	rep := setupTestRepo(t)
	store := NewCachedStore(rep, 20*time.Millisecond)

	ship := testShip("Orion", 3000)
	require.NoError(t, store.CreateShip(ctx, &ship))
	require.NoError(t, rep.DB().Exec("UPDATE ships SET name = ? WHERE ship_id = ?", "Changed", ship.ShipID).Error)

	time.Sleep(40 * time.Millisecond)
	got, err := store.GetShip(ctx, ship.ShipID)
	require.NoError(t, err)
	assert.Equal(t, "Changed", got.Name)
}
