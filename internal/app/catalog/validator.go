package catalog

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"
)

const (
	maxTextLength = 50

	MinProdYear = 2800
	MaxProdYear = 3019

	minSpeed = 0.01
	maxSpeed = 0.99

	minCrewSize = 1
	maxCrewSize = 9999
)

// Validate checks a complete candidate against the catalog rules. The
// returned error wraps ErrInvalidInput and names the first rule that failed.
func Validate(c Candidate) error {
	if c.Name == nil || c.Planet == nil || c.ShipType == nil ||
		c.ProdDate == nil || c.Speed == nil || c.CrewSize == nil {
		return fmt.Errorf("%w: required field missing", ErrInvalidInput)
	}
	if !validText(*c.Name) {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, maxTextLength)
	}
	if !validText(*c.Planet) {
		return fmt.Errorf("%w: planet must be 1..%d characters", ErrInvalidInput, maxTextLength)
	}
	if !c.ShipType.Valid() {
		return fmt.Errorf("%w: unknown ship type %q", ErrInvalidInput, string(*c.ShipType))
	}
	if !validProdDate(*c.ProdDate) {
		return fmt.Errorf("%w: production year must be in [%d, %d]", ErrInvalidInput, MinProdYear, MaxProdYear)
	}
	if !validSpeed(*c.Speed) {
		return fmt.Errorf("%w: speed must round to [%.2f, %.2f]", ErrInvalidInput, minSpeed, maxSpeed)
	}
	if *c.CrewSize < minCrewSize || *c.CrewSize > maxCrewSize {
		return fmt.Errorf("%w: crew size must be in [%d, %d]", ErrInvalidInput, minCrewSize, maxCrewSize)
	}
	return nil
}

func IsValid(c Candidate) bool {
	return Validate(c) == nil
}

func validText(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= maxTextLength
}

// validProdDate requires a non-negative epoch time and a UTC year in range.
func validProdDate(t time.Time) bool {
	if t.UnixMilli() < 0 {
		return false
	}
	year := t.UTC().Year()
	return year >= MinProdYear && year <= MaxProdYear
}

func validSpeed(v float64) bool {
	r := Round2(v)
	return r >= minSpeed && r <= maxSpeed
}

// Round2 rounds half up to two decimal places.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
