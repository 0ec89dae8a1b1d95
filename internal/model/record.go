package model

import (
	"time"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/dasha"
	"github.com/alfredjeanlab/kundli/internal/transit"
	"github.com/alfredjeanlab/kundli/internal/yoga"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// ChartRecord is a computed natal chart together with the birth details it
// was computed from.
type ChartRecord struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	DOB           string        `json:"dob"`
	Time          string        `json:"time,omitempty"`
	Latitude      float64       `json:"lat"`
	Longitude     float64       `json:"lon"`
	Timezone      string        `json:"timezone,omitempty"`
	City          string        `json:"city,omitempty"`
	Instant       time.Time     `json:"instant"`
	MoonLongitude float64       `json:"moon_longitude"`
	Lagna         zodiac.Sign   `json:"lagna"`
	Chart         *chart.Chart  `json:"chart"`
	Dasha         dasha.Result  `json:"dasha"`
	Yogas         []yoga.Result `json:"yogas"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BirthKey returns the identity used to find an earlier record of the same birth.
func (r *ChartRecord) BirthKey() string {
	return BirthKey(r.DOB, r.Time, r.Latitude, r.Longitude)
}

// DefaultLimit and MaxLimit bound a ChartFilter page.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ChartFilter holds criteria for listing stored charts.
type ChartFilter struct {
	Search string `json:"search,omitempty"` // case-insensitive match on name or city
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Normalized clamps the page bounds into range.
func (f ChartFilter) Normalized() ChartFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// ChartSummary is the stored chart header with the sky and dasha at a date.
type ChartSummary struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	DOB      string         `json:"dob"`
	Lagna    zodiac.Sign    `json:"lagna"`
	MoonSign zodiac.Sign    `json:"moon_sign"`
	Dasha    dasha.Result   `json:"dasha"`
	Transits transit.Result `json:"transits"`
	Counts   transit.Counts `json:"counts"`
}
