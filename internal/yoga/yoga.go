// Package yoga evaluates classical planetary combinations against a chart.
//
// Each rule is a pure function of the chart. Rules never fail on a well-formed
// chart and do not see each other's output, so the evaluation order only fixes
// the order of the returned list.
package yoga

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// Category groups yogas for display.
type Category string

const (
	CategoryMahapurusha Category = "mahapurusha"
	CategoryRaja        Category = "raja"
	CategoryDhana       Category = "dhana"
	CategoryLunar       Category = "lunar"
	CategorySpecial     Category = "special"
	CategoryDosha       Category = "dosha"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryMahapurusha, CategoryRaja, CategoryDhana,
		CategoryLunar, CategorySpecial, CategoryDosha,
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks whether the category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMahapurusha, CategoryRaja, CategoryDhana, CategoryLunar, CategorySpecial, CategoryDosha:
		return true
	}
	return false
}

func (c Category) rank() int {
	for i, cat := range Categories() {
		if cat == c {
			return i
		}
	}
	return len(Categories())
}

// Label returns the heading used when listing yogas of this category.
func (c Category) Label() string {
	switch c {
	case CategoryMahapurusha:
		return "Pancha Mahapurusha"
	case CategoryRaja:
		return "Raj Yoga"
	case CategoryDhana:
		return "Wealth (Dhana)"
	case CategoryLunar:
		return "Lunar Yogas"
	case CategorySpecial:
		return "Special Yogas"
	case CategoryDosha:
		return "Doshas"
	}
	return string(c)
}

// Strength is the heuristic weight assigned to a fired yoga.
type Strength string

const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthWeak     Strength = "weak"
)

// Result describes one fired combination.
type Result struct {
	Name        string          `json:"name"`
	Sanskrit    string          `json:"sanskrit"`
	Category    Category        `json:"category"`
	Present     bool            `json:"is_present"`
	Benefic     bool            `json:"is_benefic"`
	Strength    Strength        `json:"strength"`
	Planets     []zodiac.Planet `json:"planets"`
	Houses      []int           `json:"houses"`
	Description string          `json:"description"`
	Effect      string          `json:"effect"`
}

// rule inspects a chart and returns the yogas it finds.
type rule func(c *chart.Chart) []Result

var rules = []rule{
	mahapurusha,
	yogakaraka,
	rajaYoga,
	lakshmi,
	dhanaYoga,
	chandraMangala,
	gajakesari,
	moonFlanking,
	budhaditya,
	amala,
	adhi,
	saraswati,
	viparitaRaja,
	neechabhanga,
	manglik,
	kaalSarp,
}

// Evaluate runs every rule against c and returns the yogas that are present,
// ordered by category.
func Evaluate(c *chart.Chart) []Result {
	var out []Result
	for _, r := range rules {
		for _, res := range r(c) {
			if res.Present {
				out = append(out, res)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Category.rank() < out[j].Category.rank()
	})
	return out
}

// Group buckets results by category, preserving their order.
func Group(results []Result) map[Category][]Result {
	out := make(map[Category][]Result)
	for _, r := range results {
		out[r.Category] = append(out[r.Category], r)
	}
	return out
}

// Find returns the first result with the given name.
func Find(results []Result, name string) (Result, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

// dignified reports whether p is in the chart in its own or exalted sign.
func dignified(c *chart.Chart, p zodiac.Planet) bool {
	pl, ok := c.Placement(p)
	return ok && p.IsStrong(pl.Sign)
}

// conjunct reports whether a and b are both present in the same house.
func conjunct(c *chart.Chart, a, b zodiac.Planet) bool {
	ha := c.HouseOf(a)
	return ha > 0 && ha == c.HouseOf(b)
}

// exchange reports whether lord1 occupies the sign of house2 while lord2
// occupies the sign of house1.
func exchange(c *chart.Chart, lord1 zodiac.Planet, house1 int, lord2 zodiac.Planet, house2 int) bool {
	p1, ok1 := c.Placement(lord1)
	p2, ok2 := c.Placement(lord2)
	if !ok1 || !ok2 {
		return false
	}
	return p1.Sign == c.SignOf(house2) && p2.Sign == c.SignOf(house1)
}

func strength(cond bool, yes, no Strength) Strength {
	if cond {
		return yes
	}
	return no
}

func planetNames(ps []chart.Placement) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Planet.String()
	}
	return strings.Join(names, ", ")
}

func planetsOf(ps []chart.Placement) []zodiac.Planet {
	out := make([]zodiac.Planet, len(ps))
	for i, p := range ps {
		out[i] = p.Planet
	}
	return out
}

func filter(ps []chart.Placement, keep func(zodiac.Planet) bool) []chart.Placement {
	var out []chart.Placement
	for _, p := range ps {
		if keep(p.Planet) {
			out = append(out, p)
		}
	}
	return out
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", n)
}
