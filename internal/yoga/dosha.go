package yoga

import (
	"fmt"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

var manglikHouses = map[int]bool{1: true, 4: true, 7: true, 8: true, 12: true}

// manglik fires when Mars occupies the 1st, 4th, 7th, 8th or 12th. A dignified
// Mars or a Jupiter aspect on Mars weakens it.
func manglik(c *chart.Chart) []Result {
	mars, ok := c.Placement(zodiac.Mars)
	if !ok || !manglikHouses[mars.House] {
		return nil
	}
	mitigated := zodiac.Mars.IsStrong(mars.Sign)
	if jupH := c.HouseOf(zodiac.Jupiter); jupH > 0 {
		switch zodiac.HouseDistance(jupH, mars.House) {
		case 1, 5, 7, 9:
			mitigated = true
		}
	}
	desc := fmt.Sprintf("Mars in H%d", mars.House)
	if mitigated {
		desc += ", mitigated"
	}
	return []Result{{
		Name:        "Manglik Dosha",
		Sanskrit:    "मांगलिक दोष",
		Category:    CategoryDosha,
		Present:     true,
		Benefic:     false,
		Strength:    strength(mitigated, StrengthWeak, StrengthModerate),
		Planets:     []zodiac.Planet{zodiac.Mars},
		Houses:      []int{mars.House},
		Description: desc,
		Effect:      "Friction and delays in marriage and partnerships",
	}}
}

// kaalSarp fires when every classical planet lies strictly on one side of the
// Rahu-Ketu axis.
func kaalSarp(c *chart.Chart) []Result {
	rH, kH := c.HouseOf(zodiac.Rahu), c.HouseOf(zodiac.Ketu)
	if rH == 0 || kH == 0 {
		return nil
	}
	distRK := (kH - rH + 12) % 12
	distKR := (rH - kH + 12) % 12
	forward, backward := distRK > 0, distKR > 0

	for _, pl := range c.Placements() {
		if pl.Planet.IsNode() {
			continue
		}
		if d := (pl.House - rH + 12) % 12; d == 0 || d >= distRK {
			forward = false
		}
		if d := (pl.House - kH + 12) % 12; d == 0 || d >= distKR {
			backward = false
		}
	}
	if !forward && !backward {
		return nil
	}
	side := "Rahu to Ketu"
	if !forward {
		side = "Ketu to Rahu"
	}
	return []Result{{
		Name:        "Kaal Sarp Yoga",
		Sanskrit:    "काल सर्प",
		Category:    CategoryDosha,
		Present:     true,
		Benefic:     false,
		Strength:    StrengthStrong,
		Planets:     []zodiac.Planet{zodiac.Rahu, zodiac.Ketu},
		Houses:      []int{rH, kH},
		Description: fmt.Sprintf("All planets hemmed between %s (H%d to H%d)", side, rH, kH),
		Effect:      "Sudden reversals and struggle before success",
	}}
}
