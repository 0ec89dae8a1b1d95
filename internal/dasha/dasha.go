// Package dasha computes the Vimshottari period hierarchy.
//
// Every period is derived from its end instant: Start = End - Years. Major periods
// come from the Moon's position in its nakshatra at birth; sub-periods split their
// parent in proportion to each planet's weight over the 120-year cycle.
package dasha

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// CycleYears is the length of one full Vimshottari cycle.
const CycleYears = 120

// Year is the Julian year used for every period length.
const Year = time.Duration(365.25 * 24 * float64(time.Hour))

const nakshatraSpan = 360.0 / 27

// Level is a period's nesting tier.
type Level int

const (
	Maha Level = iota
	Antar
	Pratyantar
)

// Label returns the display label for the tier.
func (l Level) Label() string {
	switch l {
	case Maha:
		return "MAHA DASHA"
	case Antar:
		return "ANTARDASHA"
	case Pratyantar:
		return "PRATYANTARDASHA"
	}
	return fmt.Sprintf("LEVEL %d", int(l))
}

// sequence is the fixed Vimshottari lord order.
var sequence = [zodiac.NumPlanets]zodiac.Planet{
	zodiac.Ketu, zodiac.Venus, zodiac.Sun, zodiac.Moon, zodiac.Mars,
	zodiac.Rahu, zodiac.Jupiter, zodiac.Saturn, zodiac.Mercury,
}

var weights = [zodiac.NumPlanets]float64{
	zodiac.Sun:     6,
	zodiac.Moon:    10,
	zodiac.Mars:    7,
	zodiac.Mercury: 17,
	zodiac.Jupiter: 16,
	zodiac.Venus:   20,
	zodiac.Saturn:  19,
	zodiac.Rahu:    18,
	zodiac.Ketu:    7,
}

// Weight returns the planet's years in the 120-year cycle.
func Weight(p zodiac.Planet) float64 {
	if !p.IsValid() {
		return 0
	}
	return weights[p]
}

// Sequence returns the nine lords starting from first and cycling forward.
func Sequence(first zodiac.Planet) []zodiac.Planet {
	start := 0
	for i, p := range sequence {
		if p == first {
			start = i
			break
		}
	}
	out := make([]zodiac.Planet, len(sequence))
	for i := range out {
		out[i] = sequence[(start+i)%len(sequence)]
	}
	return out
}

// Period is one ruled interval at a given tier. Major is the ruling planet of
// the enclosing major period.
type Period struct {
	Level    Level         `json:"level"`
	Label    string        `json:"label"`
	Planet   zodiac.Planet `json:"planet"`
	Major    zodiac.Planet `json:"-"`
	Years    float64       `json:"years"`
	Duration string        `json:"duration"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
}

// Contains reports whether t falls in [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

func newPeriod(level Level, planet, major zodiac.Planet, years float64, end time.Time) Period {
	return Period{
		Level:    level,
		Label:    level.Label(),
		Planet:   planet,
		Major:    major,
		Years:    years,
		Duration: FormatDuration(years),
		Start:    end.Add(-yearsToDuration(years)),
		End:      end,
	}
}

// Result is the current period at each tier plus a flow label.
type Result struct {
	Periods [3]Period `json:"periods"`
	Flow    string    `json:"flow"`
	// Balance is the years of the first major period still to run at birth.
	Balance float64 `json:"balance_years,omitempty"`
}

// Current returns the period at the given tier.
func (r Result) Current(l Level) Period {
	return r.Periods[l]
}

func flow(ps [3]Period) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Planet.String()
	}
	return strings.Join(names, " → ")
}

// Birth describes where the cycle begins for a given Moon longitude.
type Birth struct {
	Lord    zodiac.Planet
	Elapsed float64 // fraction of the first major period already run at birth
}

// StartingLord finds the major-period lord at birth and how much of it had elapsed.
func StartingLord(moonLongitude float64) Birth {
	lon := zodiac.NormalizeLongitude(moonLongitude)
	idx := int(math.Floor(lon / nakshatraSpan))
	frac := math.Mod(lon, nakshatraSpan) / nakshatraSpan
	return Birth{Lord: sequence[idx%len(sequence)], Elapsed: frac}
}

// Timeline returns the nine major periods of the cycle that contains birth. The
// first period starts before birth by the elapsed share of its lord's years.
func Timeline(moonLongitude float64, birth time.Time) []Period {
	b := StartingLord(moonLongitude)
	lords := Sequence(b.Lord)
	cycleStart := birth.Add(-yearsToDuration(b.Elapsed * Weight(b.Lord)))

	out := make([]Period, 0, len(lords))
	elapsed := 0.0
	for _, lord := range lords {
		elapsed += Weight(lord)
		end := cycleStart.Add(yearsToDuration(elapsed))
		out = append(out, newPeriod(Maha, lord, lord, Weight(lord), end))
	}
	return out
}

// SubPeriods splits parent into its nine children, starting from the parent's own
// lord. The last child ends exactly at the parent's end.
func SubPeriods(parent Period) []Period {
	if parent.Level >= Pratyantar {
		return nil
	}
	level := parent.Level + 1
	lords := Sequence(parent.Planet)
	out := make([]Period, 0, len(lords))
	elapsed := 0.0
	for i, lord := range lords {
		years := parent.Years * Weight(lord) / CycleYears
		elapsed += years
		end := parent.Start.Add(yearsToDuration(elapsed))
		if i == len(lords)-1 {
			end = parent.End
		}
		p := newPeriod(level, lord, parent.Major, years, end)
		out = append(out, p)
	}
	return out
}

// Compute returns the periods running at ref. A reference before birth is
// treated as birth; one past the end of the cycle resolves to the cycle's final
// sub-sub-period.
func Compute(moonLongitude float64, birth, ref time.Time) Result {
	majors := Timeline(moonLongitude, birth)
	last := majors[len(majors)-1].End
	switch {
	case ref.Before(birth):
		ref = birth
	case !ref.Before(last):
		ref = last.Add(-time.Nanosecond)
	}

	var res Result
	tier := majors
	for l := Maha; l <= Pratyantar; l++ {
		cur := find(tier, ref)
		res.Periods[l] = cur
		tier = SubPeriods(cur)
	}
	res.Flow = flow(res.Periods)
	b := StartingLord(moonLongitude)
	res.Balance = Weight(b.Lord) * (1 - b.Elapsed)
	return res
}

// find returns the first period ending after t. Ends are increasing, so this is
// the period containing t even across sub-nanosecond rounding at the boundaries.
func find(ps []Period, t time.Time) Period {
	for _, p := range ps {
		if t.Before(p.End) {
			return p
		}
	}
	return ps[len(ps)-1]
}

// Anchors names the running lords and their end instants as reported by an
// external calculator.
type Anchors struct {
	Maha, Antar, Pratyantar          string
	MahaEnd, AntarEnd, PratyantarEnd time.Time
}

// Anchored builds the result from externally supplied end dates, deriving each
// start from the end minus the tier's duration. Every lord must name one of the
// nine planets.
func Anchored(a Anchors) (Result, error) {
	var lords [3]zodiac.Planet
	for i, name := range [3]string{a.Maha, a.Antar, a.Pratyantar} {
		p, ok := zodiac.ParsePlanet(name)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s lord %q is not a planet", chart.ErrInvalidInput, Level(i).Label(), name)
		}
		lords[i] = p
	}
	maha, antar, praty := lords[Maha], lords[Antar], lords[Pratyantar]
	mahaYears := Weight(maha)

	var res Result
	res.Periods[Maha] = newPeriod(Maha, maha, maha, mahaYears, a.MahaEnd)
	res.Periods[Antar] = newPeriod(Antar, antar, maha, mahaYears*Weight(antar)/CycleYears, a.AntarEnd)
	res.Periods[Pratyantar] = newPeriod(Pratyantar, praty, maha,
		mahaYears*Weight(antar)*Weight(praty)/(CycleYears*CycleYears), a.PratyantarEnd)
	res.Flow = flow(res.Periods)
	return res, nil
}

func yearsToDuration(years float64) time.Duration {
	return time.Duration(years * float64(Year))
}
