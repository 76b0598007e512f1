package ds

import "time"

type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

// ParseShipType accepts only the exact upper-case names.
func ParseShipType(s string) (ShipType, bool) {
	t := ShipType(s)
	return t, t.Valid()
}

func (t ShipType) Valid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	}
	return false
}

// @Schema(description="Ship model representing a catalog entry")
type Ship struct {
	ShipID   int64     `gorm:"primaryKey;autoIncrement;column:ship_id"`
	Name     string    `gorm:"column:name;size:50;not null"`
	Planet   string    `gorm:"column:planet;size:50;not null"`
	ShipType ShipType  `gorm:"column:ship_type;size:16;not null"`
	ProdDate time.Time `gorm:"column:prod_date;not null"`
	IsUsed   bool      `gorm:"column:is_used;not null;default:false"`
	Speed    float64   `gorm:"column:speed;not null"`
	CrewSize int       `gorm:"column:crew_size;not null"`
	Rating   float64   `gorm:"column:rating;not null"`
	PhotoURL string    `gorm:"column:photo_url"`
}

func (Ship) TableName() string {
	return "ships"
}
