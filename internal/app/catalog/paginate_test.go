package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ship_catalog/internal/app/catalog"
	"ship_catalog/internal/app/ds"
)

func sevenShips() []ds.Ship {
	ships := make([]ds.Ship, 0, 7)
	for _, id := range []int64{4, 7, 1, 3, 6, 2, 5} {
		ships = append(ships, ds.Ship{ShipID: id})
	}
	return ships
}

func TestPaginate_ByID(t *testing.T) {
	ships := sevenShips()

	assert.Equal(t, []int64{1, 2, 3}, ids(catalog.Paginate(ships, catalog.OrderID, catalog.DefaultPage())))
	assert.Equal(t, []int64{4, 5, 6}, ids(catalog.Paginate(ships, catalog.OrderID, catalog.Page{Number: 1, Size: 3})))
	assert.Equal(t, []int64{7}, ids(catalog.Paginate(ships, catalog.OrderID, catalog.Page{Number: 2, Size: 3})))
	assert.Empty(t, catalog.Paginate(ships, catalog.OrderID, catalog.Page{Number: 3, Size: 3}))
	assert.Empty(t, catalog.Paginate(ships, catalog.OrderID, catalog.Page{Number: 0, Size: 0}))
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7}, ids(catalog.Paginate(ships, catalog.OrderID, catalog.Page{Number: 0, Size: 100})))
}

func TestPaginate_DoesNotReorderInput(t *testing.T) {
	ships := sevenShips()
	catalog.Paginate(ships, catalog.OrderID, catalog.Page{Number: 0, Size: 7})
	assert.Equal(t, []int64{4, 7, 1, 3, 6, 2, 5}, ids(ships))
}

func TestPaginate_OrderKeysAreStable(t *testing.T) {
	ships := []ds.Ship{
		{ShipID: 1, Speed: 0.9, Rating: 2, ProdDate: yearDate(3000)},
		{ShipID: 2, Speed: 0.1, Rating: 1, ProdDate: yearDate(2900)},
		{ShipID: 3, Speed: 0.9, Rating: 1, ProdDate: yearDate(2800)},
		{ShipID: 4, Speed: 0.5, Rating: 3, ProdDate: yearDate(2900)},
	}
	all := catalog.Page{Number: 0, Size: 10}

	assert.Equal(t, []int64{2, 4, 1, 3}, ids(catalog.Paginate(ships, catalog.OrderSpeed, all)))
	assert.Equal(t, []int64{2, 3, 1, 4}, ids(catalog.Paginate(ships, catalog.OrderRating, all)))
	assert.Equal(t, []int64{3, 2, 4, 1}, ids(catalog.Paginate(ships, catalog.OrderDate, all)))
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, catalog.OrderSpeed, catalog.ParseOrder("SPEED"))
	assert.Equal(t, catalog.OrderDate, catalog.ParseOrder("date"))
	assert.Equal(t, catalog.OrderRating, catalog.ParseOrder(" RATING "))
	assert.Equal(t, catalog.OrderID, catalog.ParseOrder("ID"))
	assert.Equal(t, catalog.OrderID, catalog.ParseOrder(""))
	assert.Equal(t, catalog.OrderID, catalog.ParseOrder("CREW"))
}

func TestPage_Validate(t *testing.T) {
	assert.NoError(t, catalog.DefaultPage().Validate())
	assert.NoError(t, catalog.Page{Number: 0, Size: 0}.Validate())
	assert.True(t, errors.Is(catalog.Page{Number: -1, Size: 3}.Validate(), catalog.ErrInvalidArgument))
	assert.True(t, errors.Is(catalog.Page{Number: 0, Size: -3}.Validate(), catalog.ErrInvalidArgument))
}
