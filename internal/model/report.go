package model

import (
	"fmt"
	"time"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/dasha"
	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/varga"
	"github.com/alfredjeanlab/kundli/internal/yoga"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// VargaChart is one divisional chart with its metadata and the yogas it forms.
type VargaChart struct {
	Division    int           `json:"division"`
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Sanskrit    string        `json:"sanskrit,omitempty"`
	Purpose     string        `json:"purpose,omitempty"`
	Description string        `json:"description,omitempty"`
	Chart       *chart.Chart  `json:"chart"`
	Yogas       []yoga.Result `json:"yogas"`
}

// NewVargaChart derives division n from the natal chart.
func NewVargaChart(natal *chart.Chart, n int) VargaChart {
	c := varga.Compute(natal, n)
	v := VargaChart{Division: c.Division, ID: c.Name, Name: c.Name, Chart: c, Yogas: yoga.Evaluate(c)}
	if def, ok := varga.Lookup(c.Division); ok {
		v.ID, v.Name, v.Purpose = def.ID, def.Name, def.Purpose
		v.Sanskrit, v.Description = def.Sanskrit, def.Description
	}
	return v
}

// Report is everything derived from one natal snapshot.
type Report struct {
	Chart  *chart.Chart  `json:"chart"`
	Dasha  *dasha.Result `json:"dasha,omitempty"`
	Yogas  []yoga.Result `json:"yogas"`
	Vargas []VargaChart  `json:"vargas"`
}

// ChartRequest is the body of a stateless chart computation: a snapshot
// the caller already holds, the birth instant, and the reference date for
// the running dasha.
type ChartRequest struct {
	Snapshot ephemeris.Snapshot `json:"snapshot"`
	Birth    time.Time          `json:"birth,omitzero"`
	At       time.Time          `json:"at,omitzero"`
}

// Assemble builds the natal chart, dasha, yogas and every divisional chart
// from snap. Dasha anchors in the snapshot take precedence; otherwise the
// dasha is computed from the Moon when birth is set. at is the reference
// instant for the running periods.
func Assemble(snap *ephemeris.Snapshot, birth, at time.Time) (*Report, error) {
	c, err := chart.Build(snap)
	if err != nil {
		return nil, fmt.Errorf("building chart: %w", err)
	}

	r := &Report{Chart: c, Yogas: yoga.Evaluate(c)}
	switch {
	case snap.Dasha != nil:
		d, err := dasha.Anchored(dasha.Anchors(*snap.Dasha))
		if err != nil {
			return nil, fmt.Errorf("dasha anchors: %w", err)
		}
		r.Dasha = &d
	case !birth.IsZero():
		if moon, ok := snap.Longitude(zodiac.Moon); ok {
			d := dasha.Compute(moon, birth, at)
			r.Dasha = &d
		}
	}

	for _, def := range varga.Definitions() {
		if def.Division == 1 {
			continue
		}
		r.Vargas = append(r.Vargas, NewVargaChart(c, def.Division))
	}
	return r, nil
}
