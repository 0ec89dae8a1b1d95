// Package ephemeris defines the contract with the external astronomical engine
// that supplies raw longitudes, plus the transports used to reach it.
package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// ErrUnavailable wraps every failure to obtain a snapshot from the collaborator.
var ErrUnavailable = errors.New("ephemeris unavailable")

// Body is one body's position as reported by the ephemeris.
type Body struct {
	Name       string  `json:"name" toml:"name"`
	Longitude  float64 `json:"longitude" toml:"longitude"`
	Retrograde bool    `json:"is_retrograde" toml:"is_retrograde"`
}

// DashaAnchors carries the current Vimshottari lords and their end dates when the
// collaborator computes them alongside the natal positions.
type DashaAnchors struct {
	Maha          string    `json:"mahadasha" toml:"mahadasha"`
	Antar         string    `json:"antardasha" toml:"antardasha"`
	Pratyantar    string    `json:"pratyantardasha" toml:"pratyantardasha"`
	MahaEnd       time.Time `json:"mahadasha_end" toml:"mahadasha_end"`
	AntarEnd      time.Time `json:"antardasha_end" toml:"antardasha_end"`
	PratyantarEnd time.Time `json:"pratyantardasha_end" toml:"pratyantardasha_end"`
}

// Snapshot is the collaborator's answer for a birth instant and location.
type Snapshot struct {
	AscendantLongitude *float64      `json:"ascendant_longitude,omitempty" toml:"ascendant_longitude"`
	Bodies             []Body        `json:"planets" toml:"planets"`
	Dasha              *DashaAnchors `json:"dasha,omitempty" toml:"dasha"`
}

// Longitude returns the first reported longitude for p.
func (s *Snapshot) Longitude(p zodiac.Planet) (float64, bool) {
	for _, b := range s.Bodies {
		if bp, ok := zodiac.ParsePlanet(b.Name); ok && bp == p {
			return b.Longitude, true
		}
	}
	return 0, false
}

// Source computes planetary positions. Implementations must return an error wrapping
// ErrUnavailable on any transport or decoding failure; a partial snapshot is never
// returned.
type Source interface {
	Natal(ctx context.Context, instant time.Time, lat, lon float64) (*Snapshot, error)
	Current(ctx context.Context, instant time.Time) ([]Body, error)
	Close() error
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
