package varga

import (
	"reflect"
	"testing"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

func natal(t *testing.T, asc float64, bodies ...ephemeris.Body) *chart.Chart {
	t.Helper()
	c, err := chart.Build(&ephemeris.Snapshot{AscendantLongitude: &asc, Bodies: bodies})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func sampleChart(t *testing.T) *chart.Chart {
	return natal(t, 255,
		ephemeris.Body{Name: "Sun", Longitude: 100.4},
		ephemeris.Body{Name: "Moon", Longitude: 40},
		ephemeris.Body{Name: "Mars", Longitude: 250, Retrograde: true},
		ephemeris.Body{Name: "Mercury", Longitude: 89.7},
		ephemeris.Body{Name: "Jupiter", Longitude: 17},
		ephemeris.Body{Name: "Venus", Longitude: 333},
		ephemeris.Body{Name: "Saturn", Longitude: 201},
		ephemeris.Body{Name: "Rahu", Longitude: 62},
		ephemeris.Body{Name: "Ketu", Longitude: 242},
	)
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	if len(defs) != 16 {
		t.Fatalf("len(Definitions()) = %d, want 16", len(defs))
	}
	for _, n := range []int{1, 2, 3, 4, 7, 9, 10, 12, 16, 20, 24, 27, 30, 40, 45, 60} {
		if !Supported(n) {
			t.Errorf("Supported(%d) = false", n)
		}
	}
	for _, n := range []int{0, 5, 8, 11, 61} {
		if Supported(n) {
			t.Errorf("Supported(%d) = true", n)
		}
	}
	if d, _ := Lookup(9); d.ID != "D9" || d.Name != "Navamsa" || d.Sanskrit != "नवांश" {
		t.Errorf("Lookup(9) = %+v", d)
	}
	if d, _ := Lookup(30); d.Sanskrit != "त्रिंशांश" {
		t.Errorf("Lookup(30).Sanskrit = %q, want %q", d.Sanskrit, "त्रिंशांश")
	}
	for _, d := range defs {
		if d.Sanskrit == "" || d.Purpose == "" || d.Description == "" {
			t.Errorf("%s metadata incomplete: %+v", d.ID, d)
		}
	}
}

func TestCompute_D1RoundTrip(t *testing.T) {
	c := sampleChart(t)
	got := Compute(c, 1)
	if !reflect.DeepEqual(got, c) {
		t.Errorf("Compute(c, 1) differs from input\ngot  %+v\nwant %+v", got, c)
	}
}

func TestCompute_NavamsaEarthSign(t *testing.T) {
	// 40° is Vrishabha 10°: an earth sign, so the count starts at Makara.
	c := natal(t, 0, ephemeris.Body{Name: "Venus", Longitude: 40})
	d9 := Compute(c, 9)
	pl, ok := d9.Placement(zodiac.Venus)
	if !ok {
		t.Fatal("Venus missing from D9")
	}
	part := 3
	if want := zodiac.Sign((9 + part) % 12); pl.Sign != want {
		t.Errorf("D9 sign = %v, want %v", pl.Sign, want)
	}

	c = natal(t, 0, ephemeris.Body{Name: "Venus", Longitude: 41})
	pl, _ = Compute(c, 9).Placement(zodiac.Venus)
	if pl.Sign != zodiac.Mesha {
		t.Errorf("D9 sign at 41° = %v, want Mesha", pl.Sign)
	}
	if pl.Degree != 9 {
		t.Errorf("D9 degree at 41° = %d, want 9", pl.Degree)
	}
}

func TestRuleTargets(t *testing.T) {
	for _, tc := range []struct {
		name string
		n    int
		sign zodiac.Sign
		deg  float64
		want zodiac.Sign
	}{
		{"HoraOddFirst", 2, zodiac.Mesha, 10, zodiac.Simha},
		{"HoraOddSecond", 2, zodiac.Mesha, 20, zodiac.Karka},
		{"HoraEvenFirst", 2, zodiac.Vrishabha, 10, zodiac.Karka},
		{"HoraEvenSecond", 2, zodiac.Vrishabha, 20, zodiac.Simha},
		{"DrekkanaThird", 3, zodiac.Simha, 25, zodiac.Mesha},
		{"ChaturthamsaCyclic", 4, zodiac.Meena, 29, zodiac.Mithuna},
		{"SaptamsaOdd", 7, zodiac.Mithuna, 5, zodiac.Karka},
		{"SaptamsaEven", 7, zodiac.Karka, 0, zodiac.Makara},
		{"NavamsaFire", 9, zodiac.Simha, 0, zodiac.Mesha},
		{"NavamsaAir", 9, zodiac.Kumbha, 0, zodiac.Tula},
		{"NavamsaWater", 9, zodiac.Meena, 29, zodiac.Meena},
		{"DasamsaEven", 10, zodiac.Vrishabha, 0, zodiac.Makara},
		{"DwadasamsaLast", 12, zodiac.Mesha, 29, zodiac.Meena},
		{"ShodasamsaFixed", 16, zodiac.Vrishabha, 0, zodiac.Simha},
		{"ShodasamsaDual", 16, zodiac.Mithuna, 0, zodiac.Dhanu},
		{"VimsamsaFixed", 20, zodiac.Simha, 0, zodiac.Dhanu},
		{"VimsamsaDual", 20, zodiac.Kanya, 0, zodiac.Simha},
		{"ChaturvimsamsaOdd", 24, zodiac.Mesha, 0, zodiac.Simha},
		{"ChaturvimsamsaEven", 24, zodiac.Vrishabha, 0, zodiac.Karka},
		{"BhamsaWater", 27, zodiac.Karka, 0, zodiac.Makara},
		{"BhamsaEarth", 27, zodiac.Kanya, 0, zodiac.Karka},
		{"KhavedamsaEven", 40, zodiac.Vrishabha, 0, zodiac.Tula},
		{"AkshavedamsaFixed", 45, zodiac.Vrishchika, 0, zodiac.Simha},
		{"ShashtiamsaSecond", 60, zodiac.Mesha, 0.6, zodiac.Vrishabha},
		{"TrimsamsaOddFirst", 30, zodiac.Mesha, 4, zodiac.Mesha},
		{"TrimsamsaOddSecond", 30, zodiac.Mesha, 5, zodiac.Kumbha},
		{"TrimsamsaOddThird", 30, zodiac.Simha, 17, zodiac.Dhanu},
		{"TrimsamsaOddFourth", 30, zodiac.Dhanu, 24, zodiac.Mithuna},
		{"TrimsamsaOddLast", 30, zodiac.Tula, 29, zodiac.Tula},
		{"TrimsamsaEvenFirst", 30, zodiac.Vrishabha, 2, zodiac.Tula},
		{"TrimsamsaEvenSecond", 30, zodiac.Karka, 7, zodiac.Mithuna},
		{"TrimsamsaEvenFourth", 30, zodiac.Makara, 20, zodiac.Kumbha},
	} {
		t.Run(tc.name, func(t *testing.T) {
			def, ok := Lookup(tc.n)
			if !ok {
				t.Fatalf("Lookup(%d) failed", tc.n)
			}
			got, _ := def.Rule.Target(tc.n, tc.sign, tc.deg)
			if got != tc.want {
				t.Errorf("D%d(%v %v°) = %v, want %v", tc.n, tc.sign, tc.deg, got, tc.want)
			}
		})
	}
}

func TestCompute_SignCusp(t *testing.T) {
	// 59.7° rounds to Vrishabha 30°, which is Mithuna 0°.
	c := natal(t, 0, ephemeris.Body{Name: "Mars", Longitude: 59.7}, ephemeris.Body{Name: "Moon", Longitude: 29.6})
	if pl, _ := c.Placement(zodiac.Mars); pl.Sign != zodiac.Vrishabha || pl.Degree != 30 {
		t.Fatalf("D1 Mars = %v %d°, want Vrishabha 30°", pl.Sign, pl.Degree)
	}

	for _, tc := range []struct {
		name   string
		n      int
		planet zodiac.Planet
		want   zodiac.Sign
		deg    int
	}{
		// Mithuna is an air sign, so its navamsas start at Tula.
		{"NavamsaMars", 9, zodiac.Mars, zodiac.Tula, 0},
		// Mesha 30° becomes Vrishabha 0°, an earth sign starting at Makara.
		{"NavamsaMoon", 9, zodiac.Moon, zodiac.Makara, 0},
		// Mithuna is odd: its first trimsamsa is Mesha.
		{"TrimsamsaMars", 30, zodiac.Mars, zodiac.Mesha, 0},
		// Vrishabha is even: its first trimsamsa is Tula.
		{"TrimsamsaMoon", 30, zodiac.Moon, zodiac.Tula, 0},
		{"HoraMars", 2, zodiac.Mars, zodiac.Simha, 0},
		{"DasamsaMars", 10, zodiac.Mars, zodiac.Mithuna, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pl, ok := Compute(c, tc.n).Placement(tc.planet)
			if !ok {
				t.Fatalf("%v missing from D%d", tc.planet, tc.n)
			}
			if pl.Sign != tc.want || pl.Degree != tc.deg {
				t.Errorf("D%d %v = %v %d°, want %v %d°", tc.n, tc.planet, pl.Sign, pl.Degree, tc.want, tc.deg)
			}
		})
	}

	if pl, _ := Compute(c, 1).Placement(zodiac.Mars); pl.Sign != zodiac.Vrishabha || pl.Degree != 30 {
		t.Errorf("D1 copy of Mars = %v %d°, want Vrishabha 30°", pl.Sign, pl.Degree)
	}
}

func TestCompute_LagnaAndHouses(t *testing.T) {
	// Vrishabha lagna: its navamsa lagna is Makara.
	c := natal(t, 35, ephemeris.Body{Name: "Sun", Longitude: 0.5})
	d9 := Compute(c, 9)
	if d9.Lagna != zodiac.Makara {
		t.Errorf("D9 lagna = %v, want Makara", d9.Lagna)
	}
	if d9.Name != "D9" || d9.Division != 9 {
		t.Errorf("Name/Division = %q/%d", d9.Name, d9.Division)
	}
	// Sun at Mesha 1° (rounded) lands in Mesha, the 4th from Makara.
	if h := d9.HouseOf(zodiac.Sun); h != 4 {
		t.Errorf("Sun D9 house = %d, want 4", h)
	}
}

func TestCompute_Invariants(t *testing.T) {
	c := sampleChart(t)
	for _, v := range append(ComputeAll(c), Compute(c, 5), Compute(c, 150)) {
		if err := v.Validate(); err != nil {
			t.Errorf("%s: %v", v.Name, err)
		}
		if got := len(v.Placements()); got != 9 {
			t.Errorf("%s has %d placements, want 9", v.Name, got)
		}
		pl, _ := v.Placement(zodiac.Mars)
		if !pl.Retrograde {
			t.Errorf("%s: Mars lost its retrograde flag", v.Name)
		}
		for _, p := range v.Placements() {
			if p.Degree < 0 || p.Degree > 30 {
				t.Errorf("%s: %v degree %d out of range", v.Name, p.Planet, p.Degree)
			}
		}
	}
}

func TestComputeAll(t *testing.T) {
	all := ComputeAll(sampleChart(t))
	if len(all) != 15 {
		t.Fatalf("len(ComputeAll) = %d, want 15", len(all))
	}
	if all[0].Name != "D2" || all[14].Name != "D60" {
		t.Errorf("first/last = %s/%s, want D2/D60", all[0].Name, all[14].Name)
	}
}

func TestCompute_UnsupportedFallsBack(t *testing.T) {
	c := natal(t, 0, ephemeris.Body{Name: "Moon", Longitude: 25})
	v := Compute(c, 5)
	if v.Name != "D5" {
		t.Errorf("Name = %q, want D5", v.Name)
	}
	// 25° in fifths of 30° is part 4, counted forward from Mesha.
	if pl, _ := v.Placement(zodiac.Moon); pl.Sign != zodiac.Simha {
		t.Errorf("Moon D5 sign = %v, want Simha", pl.Sign)
	}
}
