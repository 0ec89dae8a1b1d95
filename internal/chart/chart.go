// Package chart builds whole-sign house charts from ephemeris snapshots.
package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// ErrInvalidInput is returned when a snapshot cannot produce a chart.
var ErrInvalidInput = errors.New("invalid input")

// Placement is one planet's position in a chart.
type Placement struct {
	Planet     zodiac.Planet `json:"planet"`
	House      int           `json:"house"`
	Sign       zodiac.Sign   `json:"sign"`
	Degree     int           `json:"degree"`
	Retrograde bool          `json:"retrograde,omitempty"`
}

// House is a single whole-sign house and the planets in it.
type House struct {
	Number     int         `json:"number"`
	Sign       zodiac.Sign `json:"sign"`
	Placements []Placement `json:"placements"`
}

// Chart is a lagna plus twelve whole-sign houses. Division is 1 for the natal
// chart and N for a divisional chart.
type Chart struct {
	Name     string      `json:"name"`
	Division int         `json:"division"`
	Lagna    zodiac.Sign `json:"lagna"`
	Houses   [12]House   `json:"houses"`
}

// Frame returns an empty chart whose houses are laid out from lagna.
func Frame(lagna zodiac.Sign, division int) *Chart {
	c := &Chart{
		Name:     fmt.Sprintf("D%d", division),
		Division: division,
		Lagna:    lagna,
	}
	for i := range c.Houses {
		c.Houses[i] = House{
			Number:     i + 1,
			Sign:       zodiac.SignOfHouse(lagna, i+1),
			Placements: []Placement{},
		}
	}
	return c
}

// Build converts an ephemeris snapshot into the natal (D1) chart.
// Unknown and repeated planet names are ignored.
func Build(snap *ephemeris.Snapshot) (*Chart, error) {
	if snap == nil || snap.AscendantLongitude == nil {
		return nil, fmt.Errorf("%w: ascendant longitude missing", ErrInvalidInput)
	}
	asc := *snap.AscendantLongitude
	if !isFinite(asc) {
		return nil, fmt.Errorf("%w: ascendant longitude %v", ErrInvalidInput, asc)
	}

	c := Frame(zodiac.SignOf(asc), 1)
	var seen [zodiac.NumPlanets]bool
	for _, b := range snap.Bodies {
		p, ok := zodiac.ParsePlanet(b.Name)
		if !ok || seen[p] {
			continue
		}
		if !isFinite(b.Longitude) {
			return nil, fmt.Errorf("%w: %s longitude %v", ErrInvalidInput, p, b.Longitude)
		}
		seen[p] = true
		c.Add(p, zodiac.SignOf(b.Longitude), zodiac.DegreeInSign(b.Longitude), b.Retrograde)
	}
	return c, nil
}

// Add places planet p in sign s. It is used while a chart is being assembled;
// a finished chart is not modified.
func (c *Chart) Add(p zodiac.Planet, s zodiac.Sign, degree int, retrograde bool) {
	h := zodiac.HouseOf(s, c.Lagna)
	c.Houses[h-1].Placements = append(c.Houses[h-1].Placements, Placement{
		Planet:     p,
		House:      h,
		Sign:       s,
		Degree:     degree,
		Retrograde: retrograde,
	})
}

// House returns house n (1..12).
func (c *Chart) House(n int) House {
	return c.Houses[(n-1+12)%12]
}

// Placements returns every placement in house order.
func (c *Chart) Placements() []Placement {
	var out []Placement
	for _, h := range c.Houses {
		out = append(out, h.Placements...)
	}
	return out
}

// Placement returns the first placement of p.
func (c *Chart) Placement(p zodiac.Planet) (Placement, bool) {
	for _, h := range c.Houses {
		for _, pl := range h.Placements {
			if pl.Planet == p {
				return pl, true
			}
		}
	}
	return Placement{}, false
}

// HouseOf returns the house holding p, or 0 when p is absent.
func (c *Chart) HouseOf(p zodiac.Planet) int {
	if pl, ok := c.Placement(p); ok {
		return pl.House
	}
	return 0
}

// PlanetsIn returns the placements in house n.
func (c *Chart) PlanetsIn(n int) []Placement {
	return c.House(n).Placements
}

// SignOf returns the sign occupying house n.
func (c *Chart) SignOf(n int) zodiac.Sign {
	return zodiac.SignOfHouse(c.Lagna, n)
}

// LordOf returns the ruler of house n.
func (c *Chart) LordOf(n int) zodiac.Planet {
	return c.SignOf(n).Lord()
}

// Validate checks the whole-sign invariant and that every placement sits in the
// house its sign implies.
func (c *Chart) Validate() error {
	for i, h := range c.Houses {
		if h.Number != i+1 {
			return fmt.Errorf("%w: house %d numbered %d", ErrInvalidInput, i+1, h.Number)
		}
		if want := zodiac.SignOfHouse(c.Lagna, i+1); h.Sign != want {
			return fmt.Errorf("%w: house %d sign %v, want %v", ErrInvalidInput, i+1, h.Sign, want)
		}
		for _, pl := range h.Placements {
			if !pl.Planet.IsValid() || pl.Sign != h.Sign || pl.House != h.Number {
				return fmt.Errorf("%w: %v misplaced in house %d", ErrInvalidInput, pl.Planet, h.Number)
			}
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
