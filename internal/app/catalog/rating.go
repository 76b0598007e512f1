package catalog

import (
	"math"
	"time"
)

const (
	ratingBase = 80
	usedFactor = 0.5
)

// Rating derives the ship rating from its speed, used flag and production
// year, rounded half up to two decimals. The year is taken in UTC.
func Rating(speed float64, isUsed bool, prodDate time.Time) float64 {
	k := 1.0
	if isUsed {
		k = usedFactor
	}
	age := float64(MaxProdYear - prodDate.UTC().Year() + 1)
	return math.Floor(ratingBase*speed*k/age*100+0.5) / 100
}
