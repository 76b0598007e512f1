package dto

import (
	"time"

	"ship_catalog/internal/app/catalog"
	"ship_catalog/internal/app/ds"
)

// ShipRequest is the body of create and update calls. Omitted fields stay nil.
type ShipRequest struct {
	Name     *string  `json:"name"`
	Planet   *string  `json:"planet"`
	ShipType *string  `json:"shipType" example:"TRANSPORT"`
	ProdDate *int64   `json:"prodDate" example:"32503680000000"` // epoch millis
	IsUsed   *bool    `json:"isUsed"`
	Speed    *float64 `json:"speed"`
	CrewSize *int     `json:"crewSize"`
}

func (r ShipRequest) ToCandidate() catalog.Candidate {
	c := catalog.Candidate{
		Name:     r.Name,
		Planet:   r.Planet,
		IsUsed:   r.IsUsed,
		Speed:    r.Speed,
		CrewSize: r.CrewSize,
	}
	if r.ShipType != nil {
		t := ds.ShipType(*r.ShipType)
		c.ShipType = &t
	}
	if r.ProdDate != nil {
		d := time.UnixMilli(*r.ProdDate).UTC()
		c.ProdDate = &d
	}
	return c
}

type ShipResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Planet   string  `json:"planet"`
	ShipType string  `json:"shipType"`
	ProdDate int64   `json:"prodDate"`
	IsUsed   bool    `json:"isUsed"`
	Speed    float64 `json:"speed"`
	CrewSize int     `json:"crewSize"`
	Rating   float64 `json:"rating"`
	PhotoURL string  `json:"photoUrl,omitempty"`
}

func FromShip(s ds.Ship) ShipResponse {
	return ShipResponse{
		ID:       s.ShipID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: string(s.ShipType),
		ProdDate: s.ProdDate.UnixMilli(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
		PhotoURL: s.PhotoURL,
	}
}

func FromShips(ships []ds.Ship) []ShipResponse {
	out := make([]ShipResponse, 0, len(ships))
	for _, s := range ships {
		out = append(out, FromShip(s))
	}
	return out
}

// ImageResponse is returned after an image upload.
type ImageResponse struct {
	ShipID   int64  `json:"shipId"`
	PhotoURL string `json:"photoUrl"`
}
