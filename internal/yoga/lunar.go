package yoga

import (
	"fmt"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// flanking are the bodies counted around the Moon for Sunapha, Anapha, Durudhara
// and Kemadruma. The Sun and the nodes never count.
func flanking(p zodiac.Planet) bool {
	switch p {
	case zodiac.Mars, zodiac.Mercury, zodiac.Jupiter, zodiac.Venus, zodiac.Saturn:
		return true
	}
	return false
}

// gajakesari fires when Jupiter is in a kendra counted from the Moon.
func gajakesari(c *chart.Chart) []Result {
	moonH, jupH := c.HouseOf(zodiac.Moon), c.HouseOf(zodiac.Jupiter)
	if moonH == 0 || jupH == 0 || !zodiac.IsKendra(zodiac.HouseDistance(moonH, jupH)) {
		return nil
	}
	return []Result{{
		Name:        "Gajakesari Yoga",
		Sanskrit:    "गजकेसरी",
		Category:    CategoryLunar,
		Present:     true,
		Benefic:     true,
		Strength:    strength(dignified(c, zodiac.Jupiter), StrengthStrong, StrengthModerate),
		Planets:     []zodiac.Planet{zodiac.Moon, zodiac.Jupiter},
		Houses:      []int{moonH, jupH},
		Description: fmt.Sprintf("Jupiter (H%d) in kendra from Moon (H%d)", jupH, moonH),
		Effect:      "Wisdom, good reputation and lasting prosperity",
	}}
}

// moonFlanking reports at most one of Durudhara, Sunapha, Anapha or Kemadruma
// from the bodies in the 2nd and 12th from the Moon.
func moonFlanking(c *chart.Chart) []Result {
	moonH := c.HouseOf(zodiac.Moon)
	if moonH == 0 {
		return nil
	}
	h2, h12 := zodiac.HouseFrom(moonH, 2), zodiac.HouseFrom(moonH, 12)
	in2 := filter(c.PlanetsIn(h2), flanking)
	in12 := filter(c.PlanetsIn(h12), flanking)

	switch {
	case len(in2) > 0 && len(in12) > 0:
		planets := append([]zodiac.Planet{zodiac.Moon}, planetsOf(in2)...)
		return []Result{{
			Name:        "Durudhara Yoga",
			Sanskrit:    "दुरुधरा",
			Category:    CategoryLunar,
			Present:     true,
			Benefic:     true,
			Strength:    StrengthStrong,
			Planets:     append(planets, planetsOf(in12)...),
			Houses:      []int{moonH, h2, h12},
			Description: fmt.Sprintf("%s in 2nd and %s in 12th from Moon", planetNames(in2), planetNames(in12)),
			Effect:      "Generosity, comfort and a wide circle of support",
		}}
	case len(in2) > 0:
		return []Result{{
			Name:        "Sunapha Yoga",
			Sanskrit:    "सुनफा",
			Category:    CategoryLunar,
			Present:     true,
			Benefic:     true,
			Strength:    StrengthModerate,
			Planets:     append([]zodiac.Planet{zodiac.Moon}, planetsOf(in2)...),
			Houses:      []int{moonH, h2},
			Description: fmt.Sprintf("%s in 2nd from Moon", planetNames(in2)),
			Effect:      "Self-earned wealth and a sharp mind",
		}}
	case len(in12) > 0:
		return []Result{{
			Name:        "Anapha Yoga",
			Sanskrit:    "अनफा",
			Category:    CategoryLunar,
			Present:     true,
			Benefic:     true,
			Strength:    StrengthModerate,
			Planets:     append([]zodiac.Planet{zodiac.Moon}, planetsOf(in12)...),
			Houses:      []int{moonH, h12},
			Description: fmt.Sprintf("%s in 12th from Moon", planetNames(in12)),
			Effect:      "Good health, charm and a composed temperament",
		}}
	}

	if zodiac.IsKendra(moonH) {
		return nil
	}
	for _, pl := range c.PlanetsIn(moonH) {
		if flanking(pl.Planet) {
			return nil
		}
	}
	return []Result{{
		Name:        "Kemadruma Yoga",
		Sanskrit:    "केमद्रुम",
		Category:    CategoryDosha,
		Present:     true,
		Benefic:     false,
		Strength:    StrengthModerate,
		Planets:     []zodiac.Planet{zodiac.Moon},
		Houses:      []int{moonH},
		Description: "No planets in 2nd or 12th from Moon and no cancellation",
		Effect:      "Periods of isolation and financial strain",
	}}
}
