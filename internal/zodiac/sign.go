// Package zodiac holds the fixed sign, planet and house tables shared by every
// chart computation. All lookups are total over the enumerations.
package zodiac

import (
	"fmt"
	"math"
	"strings"
)

// Sign is one of the twelve rashis, in cyclic order starting at Mesha.
type Sign int

const (
	Mesha Sign = iota
	Vrishabha
	Mithuna
	Karka
	Simha
	Kanya
	Tula
	Vrishchika
	Dhanu
	Makara
	Kumbha
	Meena
)

// NumSigns is the number of signs in the zodiac.
const NumSigns = 12

// Element groups signs by index mod 4.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

// Quality groups signs by index mod 3.
type Quality int

const (
	Movable Quality = iota
	Fixed
	Dual
)

var signNames = [NumSigns]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

var signEnglish = [NumSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signLords = [NumSigns]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// Signs returns all twelve signs in order.
func Signs() []Sign {
	out := make([]Sign, NumSigns)
	for i := range out {
		out[i] = Sign(i)
	}
	return out
}

// Index returns the sign normalised into 0..11.
func (s Sign) Index() int {
	return ((int(s) % NumSigns) + NumSigns) % NumSigns
}

// String returns the Sanskrit name of the sign.
func (s Sign) String() string {
	return signNames[s.Index()]
}

// English returns the English name of the sign.
func (s Sign) English() string {
	return signEnglish[s.Index()]
}

// Lord returns the planet ruling the sign.
func (s Sign) Lord() Planet {
	return signLords[s.Index()]
}

// Element returns the sign's element (fire, earth, air, water).
func (s Sign) Element() Element {
	return Element(s.Index() % 4)
}

// Quality returns whether the sign is movable, fixed or dual.
func (s Sign) Quality() Quality {
	return Quality(s.Index() % 3)
}

// IsOdd reports whether the sign is odd in the traditional 1-based count
// (Mesha, Mithuna, Simha, ...).
func (s Sign) IsOdd() bool {
	return s.Index()%2 == 0
}

// Add returns the sign n places forward, wrapping around the zodiac.
func (s Sign) Add(n int) Sign {
	return Sign(((s.Index()+n)%NumSigns + NumSigns) % NumSigns)
}

// IsValid reports whether s is one of the twelve signs.
func (s Sign) IsValid() bool {
	return s >= Mesha && s <= Meena
}

// MarshalText encodes the sign as its Sanskrit name.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid sign %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts Sanskrit or English sign names.
func (s *Sign) UnmarshalText(text []byte) error {
	v, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSign parses a Sanskrit or English sign name, case-insensitively.
func ParseSign(name string) (Sign, error) {
	n := strings.TrimSpace(name)
	for i := range NumSigns {
		if strings.EqualFold(n, signNames[i]) || strings.EqualFold(n, signEnglish[i]) {
			return Sign(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sign %q", name)
}

// NormalizeLongitude maps any finite longitude into [0, 360).
func NormalizeLongitude(lon float64) float64 {
	l := math.Mod(lon, 360)
	if l < 0 {
		l += 360
	}
	return l
}

// SignOf returns the sign containing the given ecliptic longitude.
func SignOf(lon float64) Sign {
	return Sign(int(math.Floor(NormalizeLongitude(lon)/30)) % NumSigns)
}

// DegreeInSign returns the whole degree of the longitude within its sign.
// The result is in 0..30; 30 occurs when the longitude rounds up to the cusp.
func DegreeInSign(lon float64) int {
	return int(math.Round(math.Mod(NormalizeLongitude(lon), 30)))
}
