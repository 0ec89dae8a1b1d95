package zodiac

import (
	"fmt"
	"strings"
)

// Planet is one of the nine grahas: seven bodies plus the lunar nodes.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// NumPlanets is the number of grahas.
const NumPlanets = 9

// noSign marks an absent dignity entry in the tables below.
const noSign Sign = -1

var planetNames = [NumPlanets]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

var planetAbbrev = [NumPlanets]string{
	"Su", "Mo", "Ma", "Me", "Ju", "Ve", "Sa", "Ra", "Ke",
}

var ownSigns = [NumPlanets][2]Sign{
	Sun:     {Simha, noSign},
	Moon:    {Karka, noSign},
	Mars:    {Mesha, Vrishchika},
	Mercury: {Mithuna, Kanya},
	Jupiter: {Dhanu, Meena},
	Venus:   {Vrishabha, Tula},
	Saturn:  {Makara, Kumbha},
	Rahu:    {noSign, noSign},
	Ketu:    {noSign, noSign},
}

var exaltation = [NumPlanets]Sign{
	Sun:     Mesha,
	Moon:    Vrishabha,
	Mars:    Makara,
	Mercury: Kanya,
	Jupiter: Karka,
	Venus:   Meena,
	Saturn:  Tula,
	Rahu:    Mithuna,
	Ketu:    Dhanu,
}

var debilitation = [NumPlanets]Sign{
	Sun:     Tula,
	Moon:    Vrishchika,
	Mars:    Karka,
	Mercury: Meena,
	Jupiter: Makara,
	Venus:   Kanya,
	Saturn:  Mesha,
	Rahu:    Dhanu,
	Ketu:    Mithuna,
}

// Planets returns the nine grahas in table order.
func Planets() []Planet {
	out := make([]Planet, NumPlanets)
	for i := range out {
		out[i] = Planet(i)
	}
	return out
}

// IsValid reports whether p is one of the nine grahas.
func (p Planet) IsValid() bool {
	return p >= Sun && p <= Ketu
}

// String returns the planet's name.
func (p Planet) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// Abbrev returns the two-letter chart abbreviation.
func (p Planet) Abbrev() string {
	if !p.IsValid() {
		return "??"
	}
	return planetAbbrev[p]
}

// IsNode reports whether p is Rahu or Ketu.
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// IsNaturalBenefic reports whether p is one of Jupiter, Venus, Mercury or Moon.
func (p Planet) IsNaturalBenefic() bool {
	switch p {
	case Jupiter, Venus, Mercury, Moon:
		return true
	}
	return false
}

// OwnSigns returns the signs ruled by p; nodes rule none.
func (p Planet) OwnSigns() []Sign {
	if !p.IsValid() {
		return nil
	}
	var out []Sign
	for _, s := range ownSigns[p] {
		if s != noSign {
			out = append(out, s)
		}
	}
	return out
}

// Exaltation returns the sign in which p is exalted.
func (p Planet) Exaltation() Sign {
	if !p.IsValid() {
		return noSign
	}
	return exaltation[p]
}

// Debilitation returns the sign in which p is debilitated.
func (p Planet) Debilitation() Sign {
	if !p.IsValid() {
		return noSign
	}
	return debilitation[p]
}

// IsOwnSign reports whether s is one of p's own signs.
func (p Planet) IsOwnSign(s Sign) bool {
	if !p.IsValid() {
		return false
	}
	for _, o := range ownSigns[p] {
		if o != noSign && o == s {
			return true
		}
	}
	return false
}

// IsExalted reports whether p is exalted in s.
func (p Planet) IsExalted(s Sign) bool {
	return p.IsValid() && exaltation[p] == s
}

// IsDebilitated reports whether p is debilitated in s.
func (p Planet) IsDebilitated(s Sign) bool {
	return p.IsValid() && debilitation[p] == s
}

// IsStrong reports whether p is dignified (own or exalted) in s.
func (p Planet) IsStrong(s Sign) bool {
	return p.IsExalted(s) || p.IsOwnSign(s)
}

// ExaltedIn returns the planet exalted in s, if any.
func ExaltedIn(s Sign) (Planet, bool) {
	for p := range Planet(NumPlanets) {
		if exaltation[p] == s {
			return p, true
		}
	}
	return 0, false
}

// MarshalText encodes the planet by name.
func (p Planet) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid planet %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a planet name.
func (p *Planet) UnmarshalText(text []byte) error {
	v, ok := ParsePlanet(string(text))
	if !ok {
		return fmt.Errorf("unknown planet %q", string(text))
	}
	*p = v
	return nil
}

// ParsePlanet looks up a planet by name, case-insensitively.
// Ephemeris payloads carry extra bodies, so unknown names are reported with ok=false
// rather than an error.
func ParsePlanet(name string) (Planet, bool) {
	n := strings.TrimSpace(name)
	for i, pn := range planetNames {
		if strings.EqualFold(n, pn) {
			return Planet(i), true
		}
	}
	return 0, false
}
