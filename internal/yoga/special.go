package yoga

import (
	"fmt"
	"math"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// reference is a house counted from, either the lagna or the Moon.
type reference struct {
	name  string
	house int
}

// combustionOrb is the minimum Sun-Mercury separation for Budhaditya.
const combustionOrb = 14

// budhaditya fires when the Sun and Mercury share a kendra or trikona and
// Mercury is not combust.
func budhaditya(c *chart.Chart) []Result {
	sun, ok1 := c.Placement(zodiac.Sun)
	merc, ok2 := c.Placement(zodiac.Mercury)
	if !ok1 || !ok2 || sun.House != merc.House {
		return nil
	}
	if !zodiac.IsKendra(sun.House) && !zodiac.IsTrikona(sun.House) {
		return nil
	}
	if math.Abs(float64(sun.Degree-merc.Degree)) < combustionOrb {
		return nil
	}
	return []Result{{
		Name:        "Budhaditya Yoga",
		Sanskrit:    "बुधादित्य",
		Category:    CategorySpecial,
		Present:     true,
		Benefic:     true,
		Strength:    strength(zodiac.Mercury.IsStrong(merc.Sign), StrengthStrong, StrengthModerate),
		Planets:     []zodiac.Planet{zodiac.Sun, zodiac.Mercury},
		Houses:      []int{sun.House},
		Description: fmt.Sprintf("Sun and Mercury conjunct in H%d, Mercury not combust", sun.House),
		Effect:      "Intelligence, eloquence and recognition for learning",
	}}
}

// amala fires when a natural benefic occupies the 10th from the lagna, or failing
// that the 10th from the Moon.
func amala(c *chart.Chart) []Result {
	refs := []reference{{"Lagna", 1}}
	if moonH := c.HouseOf(zodiac.Moon); moonH > 0 {
		refs = append(refs, reference{"Moon", moonH})
	}

	for _, ref := range refs {
		h10 := zodiac.HouseFrom(ref.house, 10)
		occupants := c.PlanetsIn(h10)
		good := filter(occupants, zodiac.Planet.IsNaturalBenefic)
		if len(good) == 0 {
			continue
		}
		return []Result{{
			Name:        "Amala Yoga",
			Sanskrit:    "अमल",
			Category:    CategorySpecial,
			Present:     true,
			Benefic:     true,
			Strength:    strength(len(good) == len(occupants), StrengthStrong, StrengthModerate),
			Planets:     planetsOf(good),
			Houses:      []int{h10},
			Description: fmt.Sprintf("%s in 10th from %s", planetNames(good), ref.name),
			Effect:      "A clean reputation and lasting fame",
		}}
	}
	return nil
}

// adhiBenefics are the bodies counted for Adhi and Saraswati.
var adhiBenefics = []zodiac.Planet{zodiac.Jupiter, zodiac.Venus, zodiac.Mercury}

// adhi fires when at least two of Jupiter, Venus and Mercury sit in the 6th, 7th
// or 8th from the Moon, or failing that from the lagna.
func adhi(c *chart.Chart) []Result {
	var refs []reference
	if moonH := c.HouseOf(zodiac.Moon); moonH > 0 {
		refs = append(refs, reference{"Moon", moonH})
	}
	refs = append(refs, reference{"Lagna", 1})

	for _, ref := range refs {
		targets := map[int]bool{
			zodiac.HouseFrom(ref.house, 6): true,
			zodiac.HouseFrom(ref.house, 7): true,
			zodiac.HouseFrom(ref.house, 8): true,
		}
		var found []zodiac.Planet
		var houses []int
		seen := make(map[int]bool)
		for _, p := range adhiBenefics {
			h := c.HouseOf(p)
			if h == 0 || !targets[h] {
				continue
			}
			found = append(found, p)
			if !seen[h] {
				seen[h] = true
				houses = append(houses, h)
			}
		}
		if len(found) < 2 {
			continue
		}
		return []Result{{
			Name:        "Adhi Yoga",
			Sanskrit:    "अधि",
			Category:    CategorySpecial,
			Present:     true,
			Benefic:     true,
			Strength:    strength(len(found) >= 3, StrengthStrong, StrengthModerate),
			Planets:     found,
			Houses:      houses,
			Description: fmt.Sprintf("%d benefics in 6th, 7th or 8th from %s", len(found), ref.name),
			Effect:      "Leadership, comfort and victory over opponents",
		}}
	}
	return nil
}

var saraswatiHouses = map[int]bool{1: true, 2: true, 4: true, 5: true, 7: true, 9: true, 10: true}

// saraswati fires when Jupiter, Venus and Mercury all occupy kendras, trikonas
// or the 2nd, with Jupiter dignified.
func saraswati(c *chart.Chart) []Result {
	houses := make([]int, 0, len(adhiBenefics))
	for _, p := range adhiBenefics {
		h := c.HouseOf(p)
		if !saraswatiHouses[h] {
			return nil
		}
		houses = append(houses, h)
	}
	if !dignified(c, zodiac.Jupiter) {
		return nil
	}
	return []Result{{
		Name:        "Saraswati Yoga",
		Sanskrit:    "सरस्वती",
		Category:    CategorySpecial,
		Present:     true,
		Benefic:     true,
		Strength:    StrengthStrong,
		Planets:     append([]zodiac.Planet(nil), adhiBenefics...),
		Houses:      houses,
		Description: "Jupiter, Venus and Mercury in kendra, trikona or 2nd with Jupiter dignified",
		Effect:      "Mastery of learning, arts and speech",
	}}
}

var viparitaDefs = []struct {
	house int
	name  string
}{
	{6, "Harsha"},
	{8, "Sarala"},
	{12, "Vimala"},
}

// viparitaRaja fires for each dusthana whose lord sits in a dusthana.
func viparitaRaja(c *chart.Chart) []Result {
	var out []Result
	for _, d := range viparitaDefs {
		lord := c.LordOf(d.house)
		h := c.HouseOf(lord)
		if !zodiac.IsDusthana(h) {
			continue
		}
		out = append(out, Result{
			Name:        fmt.Sprintf("Viparita Raja (%s)", d.name),
			Sanskrit:    "विपरीत राज",
			Category:    CategorySpecial,
			Present:     true,
			Benefic:     true,
			Strength:    strength(h == d.house, StrengthStrong, StrengthModerate),
			Planets:     []zodiac.Planet{lord},
			Houses:      []int{h},
			Description: fmt.Sprintf("%s lord %s placed in H%d", ordinal(d.house), lord, h),
			Effect:      "Success that arises out of adversity",
		})
	}
	return out
}

// neechabhanga fires for each debilitated planet whose debility is cancelled.
// The first matching cancellation condition is reported.
func neechabhanga(c *chart.Chart) []Result {
	var out []Result
	for _, pl := range c.Placements() {
		if !pl.Planet.IsDebilitated(pl.Sign) {
			continue
		}
		dispositor := pl.Sign.Lord()
		dispH := c.HouseOf(dispositor)

		var reason string
		switch {
		case zodiac.IsKendra(dispH):
			reason = fmt.Sprintf("dispositor %s in kendra", dispositor)
		case exaltLordInKendra(c, pl.Sign):
			exaltLord, _ := zodiac.ExaltedIn(pl.Sign)
			reason = fmt.Sprintf("%s, exalted in %s, in kendra", exaltLord, pl.Sign)
		case dispH == pl.House:
			reason = fmt.Sprintf("conjunct dispositor %s", dispositor)
		case zodiac.IsKendra(pl.House):
			reason = "debilitated planet in kendra"
		default:
			continue
		}
		out = append(out, Result{
			Name:        "Neechabhanga Raja Yoga",
			Sanskrit:    "नीचभंग राज",
			Category:    CategorySpecial,
			Present:     true,
			Benefic:     true,
			Strength:    StrengthStrong,
			Planets:     []zodiac.Planet{pl.Planet, dispositor},
			Houses:      []int{pl.House},
			Description: fmt.Sprintf("%s debilitated in %s, cancelled: %s", pl.Planet, pl.Sign, reason),
			Effect:      "Rise after early setbacks, often to high position",
		})
	}
	return out
}

func exaltLordInKendra(c *chart.Chart, s zodiac.Sign) bool {
	p, ok := zodiac.ExaltedIn(s)
	return ok && zodiac.IsKendra(c.HouseOf(p))
}
