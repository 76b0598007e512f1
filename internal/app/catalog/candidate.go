package catalog

import (
	"time"

	"ship_catalog/internal/app/ds"
)

// Candidate carries caller-supplied ship fields. A nil field is absent: on
// create it fails the required check, on update it keeps the stored value.
type Candidate struct {
	Name     *string
	Planet   *string
	ShipType *ds.ShipType
	ProdDate *time.Time
	IsUsed   *bool
	Speed    *float64
	CrewSize *int
}

func candidateOf(s ds.Ship) Candidate {
	return Candidate{
		Name:     &s.Name,
		Planet:   &s.Planet,
		ShipType: &s.ShipType,
		ProdDate: &s.ProdDate,
		IsUsed:   &s.IsUsed,
		Speed:    &s.Speed,
		CrewSize: &s.CrewSize,
	}
}

// merge overlays every non-nil field of patch onto c.
func (c Candidate) merge(patch Candidate) Candidate {
	if patch.Name != nil {
		c.Name = patch.Name
	}
	if patch.Planet != nil {
		c.Planet = patch.Planet
	}
	if patch.ShipType != nil {
		c.ShipType = patch.ShipType
	}
	if patch.ProdDate != nil {
		c.ProdDate = patch.ProdDate
	}
	if patch.IsUsed != nil {
		c.IsUsed = patch.IsUsed
	}
	if patch.Speed != nil {
		c.Speed = patch.Speed
	}
	if patch.CrewSize != nil {
		c.CrewSize = patch.CrewSize
	}
	return c
}

// apply copies a validated candidate onto s and recomputes the rating.
func (c Candidate) apply(s *ds.Ship) {
	s.Name = *c.Name
	s.Planet = *c.Planet
	s.ShipType = *c.ShipType
	s.ProdDate = c.ProdDate.UTC()
	s.IsUsed = c.IsUsed != nil && *c.IsUsed
	s.Speed = *c.Speed
	s.CrewSize = *c.CrewSize
	s.Rating = Rating(s.Speed, s.IsUsed, s.ProdDate)
}
