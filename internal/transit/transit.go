// Package transit projects current planetary positions onto a natal house frame.
package transit

import (
	"fmt"
	"math"
	"time"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/dasha"
	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// Entry is one planet's transit through the natal houses.
type Entry struct {
	Planet     zodiac.Planet `json:"planet"`
	Sign       zodiac.Sign   `json:"sign"`
	Degree     int           `json:"degree"`
	Retrograde bool          `json:"is_retrograde"`
	House      int           `json:"house"`
	Quality    Quality       `json:"quality"`
	Brief      string        `json:"brief"`
}

// Result is the set of transits for one instant.
type Result struct {
	Date    string      `json:"date"`
	Lagna   zodiac.Sign `json:"lagna"`
	Entries []Entry     `json:"entries"`
}

// Compute maps bodies onto the houses counted from lagna. Unknown and repeated
// bodies are ignored and entries come back in planet order.
func Compute(lagna zodiac.Sign, bodies []ephemeris.Body, at time.Time) (Result, error) {
	if !lagna.IsValid() {
		return Result{}, fmt.Errorf("%w: lagna %d", chart.ErrInvalidInput, int(lagna))
	}
	var slots [zodiac.NumPlanets]*Entry
	for _, b := range bodies {
		p, ok := zodiac.ParsePlanet(b.Name)
		if !ok || slots[p] != nil {
			continue
		}
		if math.IsNaN(b.Longitude) || math.IsInf(b.Longitude, 0) {
			return Result{}, fmt.Errorf("%w: %s longitude %v", chart.ErrInvalidInput, p, b.Longitude)
		}
		sign := zodiac.SignOf(b.Longitude)
		house := zodiac.HouseOf(sign, lagna)
		eff := Lookup(p, house)
		slots[p] = &Entry{
			Planet:     p,
			Sign:       sign,
			Degree:     zodiac.DegreeInSign(b.Longitude),
			Retrograde: b.Retrograde,
			House:      house,
			Quality:    eff.Quality,
			Brief:      eff.Brief,
		}
	}

	res := Result{Date: dasha.FormatDate(at), Lagna: lagna, Entries: []Entry{}}
	for _, e := range slots {
		if e != nil {
			res.Entries = append(res.Entries, *e)
		}
	}
	return res, nil
}

// Counts tallies entries by quality.
type Counts struct {
	Good        int `json:"good"`
	Neutral     int `json:"neutral"`
	Challenging int `json:"challenging"`
}

// Summary counts the entries of each quality.
func Summary(entries []Entry) Counts {
	var c Counts
	for _, e := range entries {
		switch e.Quality {
		case Good:
			c.Good++
		case Challenging:
			c.Challenging++
		default:
			c.Neutral++
		}
	}
	return c
}
