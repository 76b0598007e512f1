package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"ship_catalog/internal/app/ds"
)

// Order is the sort key applied before paging.
type Order string

const (
	OrderID     Order = "ID"
	OrderSpeed  Order = "SPEED"
	OrderDate   Order = "DATE"
	OrderRating Order = "RATING"
)

// ParseOrder maps a query value onto an Order; anything unknown sorts by id.
func ParseOrder(s string) Order {
	switch o := Order(strings.ToUpper(strings.TrimSpace(s))); o {
	case OrderSpeed, OrderDate, OrderRating:
		return o
	default:
		return OrderID
	}
}

func (o Order) compare(a, b ds.Ship) int {
	switch o {
	case OrderSpeed:
		return cmp.Compare(a.Speed, b.Speed)
	case OrderDate:
		return a.ProdDate.Compare(b.ProdDate)
	case OrderRating:
		return cmp.Compare(a.Rating, b.Rating)
	default:
		return cmp.Compare(a.ShipID, b.ShipID)
	}
}

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

type Page struct {
	Number int
	Size   int
}

func DefaultPage() Page {
	return Page{Number: DefaultPageNumber, Size: DefaultPageSize}
}

// Validate rejects negative page numbers and sizes. A zero size is allowed
// and yields an empty page.
func (p Page) Validate() error {
	if p.Number < 0 {
		return fmt.Errorf("%w: page number %d", ErrInvalidArgument, p.Number)
	}
	if p.Size < 0 {
		return fmt.Errorf("%w: page size %d", ErrInvalidArgument, p.Size)
	}
	return nil
}

// Paginate stable-sorts a copy of ships ascending by order and returns the
// requested page. Pages past the end are empty.
func Paginate(ships []ds.Ship, order Order, page Page) []ds.Ship {
	if page.Size <= 0 || page.Number < 0 || page.Number > len(ships)/page.Size {
		return []ds.Ship{}
	}
	start := page.Number * page.Size
	if start >= len(ships) {
		return []ds.Ship{}
	}
	sorted := slices.Clone(ships)
	slices.SortStableFunc(sorted, order.compare)
	end := min(start+page.Size, len(sorted))
	return sorted[start:end]
}
