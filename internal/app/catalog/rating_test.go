package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ship_catalog/internal/app/catalog"
)

func TestRating(t *testing.T) {
	tests := []struct {
		name   string
		speed  float64
		used   bool
		date   time.Time
		rating float64
	}{
		{"new ship of the last year", 0.5, false, yearDate(3019), 40},
		{"used ship of the last year", 0.5, true, yearDate(3019), 20},
		{"twenty years old", 0.5, false, yearDate(3000), 2},
		{"used and rounded", 0.82, true, yearDate(2998), 1.49},
		{"oldest and fastest", 0.99, false, yearDate(2800), 0.36},
		{"slowest used", 0.01, true, yearDate(2800), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rating, catalog.Rating(tt.speed, tt.used, tt.date))
		})
	}
}

func TestRating_Idempotent(t *testing.T) {
	date := yearDate(2990)
	first := catalog.Rating(0.37, true, date)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, catalog.Rating(0.37, true, date))
	}
}

func TestRating_YearTakenInUTC(t *testing.T) {
	// 3018-12-31 23:30 UTC is already 3019 in UTC+1.
	utc := time.Date(3018, time.December, 31, 23, 30, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("UTC+1", 3600))

	assert.Equal(t, 3019, local.Year())
	assert.Equal(t, catalog.Rating(0.5, false, utc), catalog.Rating(0.5, false, local))
	assert.Equal(t, 20.0, catalog.Rating(0.5, false, local))
}
