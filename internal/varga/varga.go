// Package varga derives divisional charts from the natal chart.
//
// Each sign's 30 degrees is cut into N parts and every part is mapped to a target
// sign by the rule registered for N. The lagna is carried through the same
// transform from the start of its sign.
package varga

import (
	"math"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// Family identifies how a division maps (sign, part) to a target sign.
type Family int

const (
	// SameSign counts parts forward from the sign itself.
	SameSign Family = iota
	// Hora alternates between Simha and Karka by sign parity.
	Hora
	// Drekkana steps four signs per part.
	Drekkana
	// ParityOffset counts from the sign in odd signs and from the sign plus
	// EvenOffset in even signs.
	ParityOffset
	// ParityFixed counts from a fixed sign chosen by parity.
	ParityFixed
	// ElementStart counts from a fixed sign chosen by the sign's element.
	ElementStart
	// QualityStart counts from a fixed sign chosen by movable/fixed/dual.
	QualityStart
	// Trimsamsa uses the five unequal rulership bands.
	Trimsamsa
)

// Rule is the data for one family. Starts is indexed by element or quality,
// or holds the odd and even starting signs for ParityFixed.
type Rule struct {
	Family     Family
	EvenOffset int
	Starts     [4]zodiac.Sign
}

// Definition is the static metadata of one divisional chart.
type Definition struct {
	Division    int    `json:"division"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sanskrit    string `json:"sanskrit"`
	Purpose     string `json:"purpose"`
	Description string `json:"description"`
	Rule        Rule   `json:"-"`
}

var definitions = []Definition{
	{1, "D1", "Rasi", "राशि", "Overall life and personality", "The birth chart itself; every other division refines it.", Rule{Family: SameSign}},
	{2, "D2", "Hora", "होरा", "Wealth and family resources", "Splits each sign into solar and lunar halves to judge accumulated wealth.", Rule{Family: Hora}},
	{3, "D3", "Drekkana", "द्रेक्काण", "Siblings and courage", "Thirds of a sign, read for siblings, initiative and courage.", Rule{Family: Drekkana}},
	{4, "D4", "Chaturthamsa", "चतुर्थांश", "Property and fortune", "Quarters of a sign, read for home, land and settled fortune.", Rule{Family: SameSign}},
	{7, "D7", "Saptamsa", "सप्तांश", "Children and progeny", "Sevenths of a sign, read for children and the continuation of the line.", Rule{Family: ParityOffset, EvenOffset: 6}},
	{9, "D9", "Navamsa", "नवांश", "Marriage and dharma", "Ninths of a sign; the main check on marriage, dharma and planetary strength.", Rule{Family: ElementStart,
		Starts: [4]zodiac.Sign{zodiac.Mesha, zodiac.Makara, zodiac.Tula, zodiac.Karka}}},
	{10, "D10", "Dasamsa", "दशांश", "Career and profession", "Tenths of a sign, read for career, status and public work.", Rule{Family: ParityOffset, EvenOffset: 8}},
	{12, "D12", "Dwadasamsa", "द्वादशांश", "Parents and ancestry", "Twelfths of a sign, read for parents and inherited traits.", Rule{Family: SameSign}},
	{16, "D16", "Shodasamsa", "षोडशांश", "Vehicles and comforts", "Sixteenths of a sign, read for vehicles, comforts and happiness.", Rule{Family: QualityStart,
		Starts: [4]zodiac.Sign{zodiac.Mesha, zodiac.Simha, zodiac.Dhanu}}},
	{20, "D20", "Vimsamsa", "विंशांश", "Spiritual progress", "Twentieths of a sign, read for worship and spiritual practice.", Rule{Family: QualityStart,
		Starts: [4]zodiac.Sign{zodiac.Mesha, zodiac.Dhanu, zodiac.Simha}}},
	{24, "D24", "Chaturvimsamsa", "चतुर्विंशांश", "Education and learning", "Twenty-fourths of a sign, read for learning and formal education.", Rule{Family: ParityFixed,
		Starts: [4]zodiac.Sign{zodiac.Simha, zodiac.Karka}}},
	{27, "D27", "Bhamsa", "भांश", "Strengths and weaknesses", "Twenty-sevenths of a sign, one per nakshatra, read for innate strength.", Rule{Family: ElementStart,
		Starts: [4]zodiac.Sign{zodiac.Mesha, zodiac.Karka, zodiac.Tula, zodiac.Makara}}},
	{30, "D30", "Trimsamsa", "त्रिंशांश", "Misfortunes and challenges", "Unequal fifths of a sign, read for hardship, illness and misfortune.", Rule{Family: Trimsamsa}},
	{40, "D40", "Khavedamsa", "खवेदांश", "Auspicious effects", "Fortieths of a sign, read for auspicious and inauspicious maternal effects.", Rule{Family: ParityFixed,
		Starts: [4]zodiac.Sign{zodiac.Mesha, zodiac.Tula}}},
	{45, "D45", "Akshavedamsa", "अक्षवेदांश", "Character and conduct", "Forty-fifths of a sign, read for character and paternal legacy.", Rule{Family: QualityStart,
		Starts: [4]zodiac.Sign{zodiac.Mesha, zodiac.Simha, zodiac.Dhanu}}},
	{60, "D60", "Shashtiamsa", "षष्ट्यंश", "Past life karma", "Sixtieths of a sign, read for karma carried from past lives.", Rule{Family: SameSign}},
}

// band is one Trimsamsa segment: degrees below Upto map to Sign.
type band struct {
	upto float64
	sign zodiac.Sign
}

var trimsamsaOdd = [5]band{
	{5, zodiac.Mesha},
	{10, zodiac.Kumbha},
	{18, zodiac.Dhanu},
	{25, zodiac.Mithuna},
	{30, zodiac.Tula},
}

var trimsamsaEven = [5]band{
	{5, zodiac.Tula},
	{10, zodiac.Mithuna},
	{18, zodiac.Dhanu},
	{25, zodiac.Kumbha},
	{30, zodiac.Mesha},
}

// Definitions returns the sixteen built-in divisional charts in ascending order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for division n.
func Lookup(n int) (Definition, bool) {
	for _, d := range definitions {
		if d.Division == n {
			return d, true
		}
	}
	return Definition{}, false
}

// Supported reports whether n is one of the built-in divisions.
func Supported(n int) bool {
	_, ok := Lookup(n)
	return ok
}

// partEpsilon keeps whole-degree positions that sit exactly on a part boundary
// (10° in a ninth of 30°) from falling into the previous part.
const partEpsilon = 1e-9

// Target maps a position (sign plus degree within it) to its divisional sign and
// the degree it occupies there.
func (r Rule) Target(n int, s zodiac.Sign, deg float64) (zodiac.Sign, int) {
	size := 30 / float64(n)
	part := int(math.Floor(deg/size + partEpsilon))
	if part > n-1 {
		part = n - 1
	}
	if part < 0 {
		part = 0
	}
	degInPart := int(math.Round((deg - float64(part)*size) / size * 30))

	switch r.Family {
	case Hora:
		if s.IsOdd() == (part == 0) {
			return zodiac.Simha, degInPart
		}
		return zodiac.Karka, degInPart
	case Drekkana:
		return s.Add(part * 4), degInPart
	case ParityOffset:
		if s.IsOdd() {
			return s.Add(part), degInPart
		}
		return s.Add(r.EvenOffset + part), degInPart
	case ParityFixed:
		if s.IsOdd() {
			return r.Starts[0].Add(part), degInPart
		}
		return r.Starts[1].Add(part), degInPart
	case ElementStart:
		return r.Starts[s.Element()].Add(part), degInPart
	case QualityStart:
		return r.Starts[s.Quality()].Add(part), degInPart
	case Trimsamsa:
		bands := trimsamsaEven
		if s.IsOdd() {
			bands = trimsamsaOdd
		}
		for _, b := range bands {
			if deg < b.upto {
				return b.sign, degInPart
			}
		}
		return bands[len(bands)-1].sign, degInPart
	default:
		return s.Add(part), degInPart
	}
}

// Compute returns the divisional chart for n. Divisions without a built-in
// definition use the same-sign cyclic rule. D1 reproduces c unchanged.
func Compute(c *chart.Chart, n int) *chart.Chart {
	if n < 1 {
		n = 1
	}
	rule := Rule{Family: SameSign}
	if def, ok := Lookup(n); ok {
		rule = def.Rule
	}

	lagna, _ := rule.Target(n, c.Lagna, 0)
	out := chart.Frame(lagna, n)
	for _, pl := range c.Placements() {
		sign, deg := pl.Sign, pl.Degree
		if n > 1 && deg >= 30 {
			// A rounded 30° is 0° of the next sign.
			sign, deg = sign.Add(1), 0
		}
		vs, vd := rule.Target(n, sign, float64(deg))
		out.Add(pl.Planet, vs, vd, pl.Retrograde)
	}
	return out
}

// ComputeAll returns every built-in divisional chart except D1.
func ComputeAll(c *chart.Chart) []*chart.Chart {
	out := make([]*chart.Chart, 0, len(definitions)-1)
	for _, d := range definitions {
		if d.Division == 1 {
			continue
		}
		out = append(out, Compute(c, d.Division))
	}
	return out
}
