package catalog

import (
	"strings"
	"time"

	"ship_catalog/internal/app/ds"
)

// Criteria holds the optional listing filters. A nil field imposes no
// constraint; bounds are inclusive.
type Criteria struct {
	Name        *string
	Planet      *string
	ShipType    *ds.ShipType
	After       *time.Time
	Before      *time.Time
	IsUsed      *bool
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}

type predicate func(s *ds.Ship) bool

func (c Criteria) predicates() []predicate {
	var ps []predicate
	if c.Name != nil {
		name := *c.Name
		ps = append(ps, func(s *ds.Ship) bool { return strings.Contains(s.Name, name) })
	}
	if c.Planet != nil {
		planet := *c.Planet
		ps = append(ps, func(s *ds.Ship) bool { return strings.Contains(s.Planet, planet) })
	}
	if c.ShipType != nil {
		t := *c.ShipType
		ps = append(ps, func(s *ds.Ship) bool { return s.ShipType == t })
	}
	if c.After != nil {
		after := *c.After
		ps = append(ps, func(s *ds.Ship) bool { return !s.ProdDate.Before(after) })
	}
	if c.Before != nil {
		before := *c.Before
		ps = append(ps, func(s *ds.Ship) bool { return !s.ProdDate.After(before) })
	}
	if c.IsUsed != nil {
		used := *c.IsUsed
		ps = append(ps, func(s *ds.Ship) bool { return s.IsUsed == used })
	}
	// speed bounds see the same two-decimal value the validator accepted
	if c.MinSpeed != nil {
		lo := *c.MinSpeed
		ps = append(ps, func(s *ds.Ship) bool { return Round2(s.Speed) >= lo })
	}
	if c.MaxSpeed != nil {
		hi := *c.MaxSpeed
		ps = append(ps, func(s *ds.Ship) bool { return Round2(s.Speed) <= hi })
	}
	if c.MinCrewSize != nil {
		lo := *c.MinCrewSize
		ps = append(ps, func(s *ds.Ship) bool { return s.CrewSize >= lo })
	}
	if c.MaxCrewSize != nil {
		hi := *c.MaxCrewSize
		ps = append(ps, func(s *ds.Ship) bool { return s.CrewSize <= hi })
	}
	if c.MinRating != nil {
		lo := *c.MinRating
		ps = append(ps, func(s *ds.Ship) bool { return s.Rating >= lo })
	}
	if c.MaxRating != nil {
		hi := *c.MaxRating
		ps = append(ps, func(s *ds.Ship) bool { return s.Rating <= hi })
	}
	return ps
}

// Filter returns the ships matching every present criterion, in input order.
func Filter(ships []ds.Ship, c Criteria) []ds.Ship {
	ps := c.predicates()
	out := make([]ds.Ship, 0, len(ships))
next:
	for i := range ships {
		for _, p := range ps {
			if !p(&ships[i]) {
				continue next
			}
		}
		out = append(out, ships[i])
	}
	return out
}
