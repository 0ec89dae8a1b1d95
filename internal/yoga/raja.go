package yoga

import (
	"fmt"
	"sort"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

var mahapurushaDefs = []struct {
	planet   zodiac.Planet
	name     string
	sanskrit string
	effect   string
}{
	{zodiac.Mars, "Ruchaka Yoga", "रुचक", "Courage, command and a strong constitution"},
	{zodiac.Mercury, "Bhadra Yoga", "भद्र", "Sharp intellect and skill in speech and commerce"},
	{zodiac.Jupiter, "Hamsa Yoga", "हंस", "Learning, ethics and respect among the wise"},
	{zodiac.Venus, "Malavya Yoga", "मालव्य", "Comfort, refinement and a happy marriage"},
	{zodiac.Saturn, "Shasha Yoga", "शश", "Discipline, endurance and authority over many"},
}

// mahapurusha fires for each of the five bodies that sits in a kendra in its own
// or exalted sign.
func mahapurusha(c *chart.Chart) []Result {
	var out []Result
	for _, d := range mahapurushaDefs {
		pl, ok := c.Placement(d.planet)
		if !ok || !zodiac.IsKendra(pl.House) || !d.planet.IsStrong(pl.Sign) {
			continue
		}
		exalted := d.planet.IsExalted(pl.Sign)
		dignity := "own"
		if exalted {
			dignity = "exalted"
		}
		out = append(out, Result{
			Name:        d.name,
			Sanskrit:    d.sanskrit,
			Category:    CategoryMahapurusha,
			Present:     true,
			Benefic:     true,
			Strength:    strength(exalted, StrengthStrong, StrengthModerate),
			Planets:     []zodiac.Planet{d.planet},
			Houses:      []int{pl.House},
			Description: fmt.Sprintf("%s in kendra (H%d) in %s sign", d.planet, pl.House, dignity),
			Effect:      d.effect,
		})
	}
	return out
}

// yogakaraka fires once per planet that rules both a kendra and a different
// trikona.
func yogakaraka(c *chart.Chart) []Result {
	var out []Result
	seen := make(map[zodiac.Planet]bool)
	for _, kh := range zodiac.KendraHouses() {
		for _, th := range zodiac.TrikonaHouses() {
			if kh == th {
				continue
			}
			lord := c.LordOf(kh)
			if lord != c.LordOf(th) || seen[lord] {
				continue
			}
			pl, ok := c.Placement(lord)
			if !ok {
				continue
			}
			seen[lord] = true
			wellPlaced := zodiac.IsKendra(pl.House) || zodiac.IsTrikona(pl.House)
			out = append(out, Result{
				Name:        "Raj Yoga (Yogakaraka)",
				Sanskrit:    "योगकारक",
				Category:    CategoryRaja,
				Present:     true,
				Benefic:     true,
				Strength:    strength(lord.IsStrong(pl.Sign) && wellPlaced, StrengthStrong, StrengthModerate),
				Planets:     []zodiac.Planet{lord},
				Houses:      []int{pl.House},
				Description: fmt.Sprintf("%s rules H%d (kendra) and H%d (trikona), placed in H%d", lord, kh, th, pl.House),
				Effect:      "Rise to authority and recognition in one's chosen work",
			})
		}
	}
	return out
}

// rajaYoga fires when a kendra lord and a different trikona lord are conjunct or
// exchange signs. Each pair is reported once per method.
func rajaYoga(c *chart.Chart) []Result {
	var out []Result
	seen := make(map[string]bool)
	for _, kh := range zodiac.KendraHouses() {
		for _, th := range zodiac.TrikonaHouses() {
			if kh == 1 && th == 1 {
				continue
			}
			kl, tl := c.LordOf(kh), c.LordOf(th)
			if kl == tl {
				continue
			}
			kp, ok1 := c.Placement(kl)
			tp, ok2 := c.Placement(tl)
			if !ok1 || !ok2 {
				continue
			}
			conj := kp.House == tp.House
			if !conj && !exchange(c, kl, kh, tl, th) {
				continue
			}
			method := "in sign exchange"
			if conj {
				method = "conjunct"
			}
			key := pairKey(kl, tl) + "/" + method
			if seen[key] {
				continue
			}
			seen[key] = true

			houses := []int{kp.House, tp.House}
			desc := fmt.Sprintf("%s (H%d lord) %s with %s (H%d lord)", kl, kh, method, tl, th)
			if conj {
				houses = []int{kp.House}
				desc += fmt.Sprintf(" in H%d", kp.House)
			}
			out = append(out, Result{
				Name:        "Raj Yoga",
				Sanskrit:    "राज",
				Category:    CategoryRaja,
				Present:     true,
				Benefic:     true,
				Strength:    strength(kl.IsStrong(kp.Sign) || tl.IsStrong(tp.Sign), StrengthStrong, StrengthModerate),
				Planets:     []zodiac.Planet{kl, tl},
				Houses:      houses,
				Description: desc,
				Effect:      "Status, influence and advancement in career",
			})
		}
	}
	return out
}

func pairKey(a, b zodiac.Planet) string {
	names := []string{a.String(), b.String()}
	sort.Strings(names)
	return names[0] + "-" + names[1]
}

// lakshmi fires when the 9th lord is dignified in a kendra and the lagna lord is
// dignified.
func lakshmi(c *chart.Chart) []Result {
	lagnaLord, lord9 := c.LordOf(1), c.LordOf(9)
	ll, ok1 := c.Placement(lagnaLord)
	l9, ok2 := c.Placement(lord9)
	if !ok1 || !ok2 || !zodiac.IsKendra(l9.House) || !lord9.IsStrong(l9.Sign) || !lagnaLord.IsStrong(ll.Sign) {
		return nil
	}
	return []Result{{
		Name:        "Lakshmi Yoga",
		Sanskrit:    "लक्ष्मी",
		Category:    CategoryDhana,
		Present:     true,
		Benefic:     true,
		Strength:    StrengthStrong,
		Planets:     []zodiac.Planet{lord9, lagnaLord},
		Houses:      []int{l9.House, ll.House},
		Description: fmt.Sprintf("9th lord %s dignified in kendra (H%d), lagna lord %s dignified", lord9, l9.House, lagnaLord),
		Effect:      "Abundant wealth and lasting good fortune",
	}}
}

// dhanaYoga fires when the lords of the 2nd and 11th differ and are conjunct or
// exchange signs.
func dhanaYoga(c *chart.Chart) []Result {
	lord2, lord11 := c.LordOf(2), c.LordOf(11)
	if lord2 == lord11 {
		return nil
	}
	conj := conjunct(c, lord2, lord11)
	if !conj && !exchange(c, lord2, 2, lord11, 11) {
		return nil
	}
	l2, _ := c.Placement(lord2)
	l11, _ := c.Placement(lord11)
	houses := []int{l2.House, l11.House}
	method := "in sign exchange with"
	if conj {
		houses = []int{l2.House}
		method = "conjunct"
	}
	return []Result{{
		Name:        "Dhana Yoga",
		Sanskrit:    "धन",
		Category:    CategoryDhana,
		Present:     true,
		Benefic:     true,
		Strength:    StrengthModerate,
		Planets:     []zodiac.Planet{lord2, lord11},
		Houses:      houses,
		Description: fmt.Sprintf("2nd lord %s %s 11th lord %s", lord2, method, lord11),
		Effect:      "Steady accumulation of wealth and income",
	}}
}

// chandraMangala fires when the Moon and Mars share a house.
func chandraMangala(c *chart.Chart) []Result {
	if !conjunct(c, zodiac.Moon, zodiac.Mars) {
		return nil
	}
	h := c.HouseOf(zodiac.Moon)
	return []Result{{
		Name:        "Chandra-Mangala Yoga",
		Sanskrit:    "चन्द्र-मंगल",
		Category:    CategoryDhana,
		Present:     true,
		Benefic:     true,
		Strength:    strength(zodiac.IsKendra(h), StrengthStrong, StrengthModerate),
		Planets:     []zodiac.Planet{zodiac.Moon, zodiac.Mars},
		Houses:      []int{h},
		Description: fmt.Sprintf("Moon and Mars conjunct in H%d", h),
		Effect:      "Earnings through enterprise and determination",
	}}
}
