package yoga

import (
	"reflect"
	"testing"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

type pos struct {
	planet zodiac.Planet
	sign   zodiac.Sign
	degree int
}

func at(p zodiac.Planet, s zodiac.Sign) pos { return pos{p, s, 10} }

func chartOf(lagna zodiac.Sign, ps ...pos) *chart.Chart {
	c := chart.Frame(lagna, 1)
	for _, p := range ps {
		c.Add(p.planet, p.sign, p.degree, false)
	}
	return c
}

func names(rs []Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func mustFind(t *testing.T, rs []Result, name string) Result {
	t.Helper()
	r, ok := Find(rs, name)
	if !ok {
		t.Fatalf("%s not found in %v", name, names(rs))
	}
	return r
}

func TestMahapurusha(t *testing.T) {
	for _, tc := range []struct {
		name     string
		c        *chart.Chart
		yoga     string
		strength Strength
		house    int
	}{
		{"RuchakaOwn", chartOf(zodiac.Mesha, at(zodiac.Mars, zodiac.Mesha)), "Ruchaka Yoga", StrengthModerate, 1},
		{"RuchakaExalted", chartOf(zodiac.Mesha, at(zodiac.Mars, zodiac.Makara)), "Ruchaka Yoga", StrengthStrong, 10},
		{"Hamsa", chartOf(zodiac.Karka, at(zodiac.Jupiter, zodiac.Karka)), "Hamsa Yoga", StrengthStrong, 1},
		{"Shasha", chartOf(zodiac.Mesha, at(zodiac.Saturn, zodiac.Tula)), "Shasha Yoga", StrengthStrong, 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := mustFind(t, Evaluate(tc.c), tc.yoga)
			if r.Strength != tc.strength {
				t.Errorf("Strength = %v, want %v", r.Strength, tc.strength)
			}
			if !reflect.DeepEqual(r.Houses, []int{tc.house}) {
				t.Errorf("Houses = %v, want [%d]", r.Houses, tc.house)
			}
			if r.Category != CategoryMahapurusha || !r.Benefic {
				t.Errorf("Category/Benefic = %v/%v", r.Category, r.Benefic)
			}
		})
	}

	// Own sign outside a kendra does not qualify.
	if _, ok := Find(Evaluate(chartOf(zodiac.Mesha, at(zodiac.Mars, zodiac.Vrishchika))), "Ruchaka Yoga"); ok {
		t.Error("Ruchaka fired for Mars in the 8th")
	}
}

func TestYogakaraka(t *testing.T) {
	// Vrishabha lagna: Saturn rules both the 9th (Makara) and the 10th (Kumbha).
	c := chartOf(zodiac.Vrishabha, at(zodiac.Saturn, zodiac.Kumbha))
	var found []Result
	for _, r := range Evaluate(c) {
		if r.Name == "Raj Yoga (Yogakaraka)" {
			found = append(found, r)
		}
	}
	if len(found) != 1 {
		t.Fatalf("got %d yogakaraka results, want 1", len(found))
	}
	r := found[0]
	if !reflect.DeepEqual(r.Planets, []zodiac.Planet{zodiac.Saturn}) {
		t.Errorf("Planets = %v, want [Saturn]", r.Planets)
	}
	if r.Strength != StrengthStrong || !reflect.DeepEqual(r.Houses, []int{10}) {
		t.Errorf("Strength/Houses = %v/%v, want strong/[10]", r.Strength, r.Houses)
	}

	// Absent lord produces nothing.
	if _, ok := Find(Evaluate(chartOf(zodiac.Vrishabha)), "Raj Yoga (Yogakaraka)"); ok {
		t.Error("yogakaraka fired without Saturn in the chart")
	}
}

func TestRajYoga(t *testing.T) {
	t.Run("Exchange", func(t *testing.T) {
		// Mesha lagna: Saturn (10th lord) in Dhanu, Jupiter (9th lord) in Makara.
		c := chartOf(zodiac.Mesha, at(zodiac.Saturn, zodiac.Dhanu), at(zodiac.Jupiter, zodiac.Makara))
		var raj []Result
		for _, r := range Evaluate(c) {
			if r.Name == "Raj Yoga" {
				raj = append(raj, r)
			}
		}
		if len(raj) != 1 {
			t.Fatalf("got %d Raj Yoga results, want 1", len(raj))
		}
		if !reflect.DeepEqual(raj[0].Planets, []zodiac.Planet{zodiac.Saturn, zodiac.Jupiter}) {
			t.Errorf("Planets = %v", raj[0].Planets)
		}
		if !reflect.DeepEqual(raj[0].Houses, []int{9, 10}) {
			t.Errorf("Houses = %v, want [9 10]", raj[0].Houses)
		}
		if raj[0].Strength != StrengthModerate {
			t.Errorf("Strength = %v, want moderate", raj[0].Strength)
		}
	})
	t.Run("Conjunction", func(t *testing.T) {
		// Mesha lagna: Moon (4th lord) with Sun (5th lord) in Karka.
		c := chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Karka), at(zodiac.Sun, zodiac.Karka))
		r := mustFind(t, Evaluate(c), "Raj Yoga")
		if !reflect.DeepEqual(r.Houses, []int{4}) {
			t.Errorf("Houses = %v, want [4]", r.Houses)
		}
		if r.Strength != StrengthStrong {
			t.Errorf("Strength = %v, want strong (Moon in own sign)", r.Strength)
		}
	})
}

func TestDhanaCategory(t *testing.T) {
	t.Run("Lakshmi", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Jupiter, zodiac.Karka), at(zodiac.Mars, zodiac.Mesha))
		r := mustFind(t, Evaluate(c), "Lakshmi Yoga")
		if !reflect.DeepEqual(r.Planets, []zodiac.Planet{zodiac.Jupiter, zodiac.Mars}) {
			t.Errorf("Planets = %v", r.Planets)
		}
		if !reflect.DeepEqual(r.Houses, []int{4, 1}) {
			t.Errorf("Houses = %v, want [4 1]", r.Houses)
		}
	})
	t.Run("Dhana", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Venus, zodiac.Mithuna), at(zodiac.Saturn, zodiac.Mithuna))
		r := mustFind(t, Evaluate(c), "Dhana Yoga")
		if r.Strength != StrengthModerate || !reflect.DeepEqual(r.Houses, []int{3}) {
			t.Errorf("Strength/Houses = %v/%v", r.Strength, r.Houses)
		}
	})
	t.Run("ChandraMangala", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Karka), at(zodiac.Mars, zodiac.Karka))
		r := mustFind(t, Evaluate(c), "Chandra-Mangala Yoga")
		if r.Strength != StrengthStrong || r.Category != CategoryDhana {
			t.Errorf("Strength/Category = %v/%v", r.Strength, r.Category)
		}
	})
}

func TestLunar(t *testing.T) {
	t.Run("Gajakesari", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Mesha), at(zodiac.Jupiter, zodiac.Tula))
		r := mustFind(t, Evaluate(c), "Gajakesari Yoga")
		if !reflect.DeepEqual(r.Houses, []int{1, 7}) || r.Strength != StrengthModerate {
			t.Errorf("Houses/Strength = %v/%v", r.Houses, r.Strength)
		}
	})
	t.Run("Sunapha", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Mithuna), at(zodiac.Mars, zodiac.Karka))
		r := mustFind(t, Evaluate(c), "Sunapha Yoga")
		if !reflect.DeepEqual(r.Houses, []int{3, 4}) {
			t.Errorf("Houses = %v, want [3 4]", r.Houses)
		}
	})
	t.Run("Anapha", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Mithuna), at(zodiac.Venus, zodiac.Vrishabha))
		r := mustFind(t, Evaluate(c), "Anapha Yoga")
		if !reflect.DeepEqual(r.Houses, []int{3, 2}) {
			t.Errorf("Houses = %v, want [3 2]", r.Houses)
		}
	})
	t.Run("Durudhara", func(t *testing.T) {
		c := chartOf(zodiac.Mesha,
			at(zodiac.Moon, zodiac.Mithuna),
			at(zodiac.Mars, zodiac.Karka),
			at(zodiac.Venus, zodiac.Vrishabha),
		)
		rs := Evaluate(c)
		r := mustFind(t, rs, "Durudhara Yoga")
		if !reflect.DeepEqual(r.Planets, []zodiac.Planet{zodiac.Moon, zodiac.Mars, zodiac.Venus}) {
			t.Errorf("Planets = %v", r.Planets)
		}
		if !reflect.DeepEqual(r.Houses, []int{3, 4, 2}) {
			t.Errorf("Houses = %v, want [3 4 2]", r.Houses)
		}
		for _, n := range []string{"Sunapha Yoga", "Anapha Yoga", "Kemadruma Yoga"} {
			if _, ok := Find(rs, n); ok {
				t.Errorf("%s reported alongside Durudhara", n)
			}
		}
	})
	t.Run("SunDoesNotCount", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Mithuna), at(zodiac.Sun, zodiac.Karka))
		if _, ok := Find(Evaluate(c), "Sunapha Yoga"); ok {
			t.Error("Sun in the 2nd from Moon formed Sunapha")
		}
	})
}

func TestKemadruma(t *testing.T) {
	c := chartOf(zodiac.Mesha,
		at(zodiac.Moon, zodiac.Mithuna),
		at(zodiac.Sun, zodiac.Vrishabha),
		at(zodiac.Jupiter, zodiac.Dhanu),
	)
	rs := Evaluate(c)
	if got, want := names(rs), []string{"Gajakesari Yoga", "Kemadruma Yoga"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Evaluate = %v, want %v", got, want)
	}
	k := rs[1]
	if k.Category != CategoryDosha || k.Benefic || k.Strength != StrengthModerate {
		t.Errorf("Kemadruma = %+v", k)
	}

	t.Run("CancelledInKendra", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Karka))
		if _, ok := Find(Evaluate(c), "Kemadruma Yoga"); ok {
			t.Error("Kemadruma fired with Moon in a kendra")
		}
	})
	t.Run("CancelledByCompanion", func(t *testing.T) {
		c := chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Mithuna), at(zodiac.Saturn, zodiac.Mithuna))
		if _, ok := Find(Evaluate(c), "Kemadruma Yoga"); ok {
			t.Error("Kemadruma fired with Saturn beside the Moon")
		}
	})
}

func TestBudhaditya(t *testing.T) {
	far := chartOf(zodiac.Mesha, pos{zodiac.Sun, zodiac.Simha, 2}, pos{zodiac.Mercury, zodiac.Simha, 20})
	r := mustFind(t, Evaluate(far), "Budhaditya Yoga")
	if !reflect.DeepEqual(r.Houses, []int{5}) {
		t.Errorf("Houses = %v, want [5]", r.Houses)
	}

	combust := chartOf(zodiac.Mesha, pos{zodiac.Sun, zodiac.Simha, 2}, pos{zodiac.Mercury, zodiac.Simha, 7})
	if _, ok := Find(Evaluate(combust), "Budhaditya Yoga"); ok {
		t.Error("Budhaditya fired with Mercury combust")
	}

	dusthana := chartOf(zodiac.Mesha, pos{zodiac.Sun, zodiac.Kanya, 2}, pos{zodiac.Mercury, zodiac.Kanya, 25})
	if _, ok := Find(Evaluate(dusthana), "Budhaditya Yoga"); ok {
		t.Error("Budhaditya fired in the 6th")
	}
}

func TestAmala(t *testing.T) {
	pure := mustFind(t, Evaluate(chartOf(zodiac.Mesha, at(zodiac.Venus, zodiac.Makara))), "Amala Yoga")
	if pure.Strength != StrengthStrong || !reflect.DeepEqual(pure.Houses, []int{10}) {
		t.Errorf("Strength/Houses = %v/%v", pure.Strength, pure.Houses)
	}

	mixed := mustFind(t, Evaluate(chartOf(zodiac.Mesha,
		at(zodiac.Venus, zodiac.Makara), at(zodiac.Saturn, zodiac.Makara))), "Amala Yoga")
	if mixed.Strength != StrengthModerate {
		t.Errorf("Strength = %v, want moderate", mixed.Strength)
	}

	// Nothing in the 10th from lagna: the 10th from the Moon (Mithuna in the 3rd) is the 12th.
	fromMoon := mustFind(t, Evaluate(chartOf(zodiac.Mesha,
		at(zodiac.Moon, zodiac.Mithuna), at(zodiac.Jupiter, zodiac.Meena))), "Amala Yoga")
	if !reflect.DeepEqual(fromMoon.Houses, []int{12}) {
		t.Errorf("Houses = %v, want [12]", fromMoon.Houses)
	}
}

func TestAdhi(t *testing.T) {
	two := chartOf(zodiac.Mesha,
		at(zodiac.Moon, zodiac.Mesha),
		at(zodiac.Jupiter, zodiac.Tula),
		at(zodiac.Venus, zodiac.Kanya),
	)
	r := mustFind(t, Evaluate(two), "Adhi Yoga")
	if r.Strength != StrengthModerate {
		t.Errorf("Strength = %v, want moderate", r.Strength)
	}
	if !reflect.DeepEqual(r.Houses, []int{7, 6}) {
		t.Errorf("Houses = %v, want [7 6]", r.Houses)
	}

	three := chartOf(zodiac.Mesha,
		at(zodiac.Moon, zodiac.Mesha),
		at(zodiac.Jupiter, zodiac.Tula),
		at(zodiac.Venus, zodiac.Tula),
		at(zodiac.Mercury, zodiac.Vrishchika),
	)
	r = mustFind(t, Evaluate(three), "Adhi Yoga")
	if r.Strength != StrengthStrong || len(r.Planets) != 3 {
		t.Errorf("Strength/Planets = %v/%v", r.Strength, r.Planets)
	}
	if !reflect.DeepEqual(r.Houses, []int{7, 8}) {
		t.Errorf("Houses = %v, want distinct [7 8]", r.Houses)
	}
}

func TestSaraswati(t *testing.T) {
	c := chartOf(zodiac.Karka,
		at(zodiac.Jupiter, zodiac.Karka),
		at(zodiac.Venus, zodiac.Simha),
		at(zodiac.Mercury, zodiac.Tula),
	)
	r := mustFind(t, Evaluate(c), "Saraswati Yoga")
	if !reflect.DeepEqual(r.Houses, []int{1, 2, 4}) {
		t.Errorf("Houses = %v, want [1 2 4]", r.Houses)
	}

	// Mercury in the 3rd breaks it.
	c = chartOf(zodiac.Karka,
		at(zodiac.Jupiter, zodiac.Karka),
		at(zodiac.Venus, zodiac.Simha),
		at(zodiac.Mercury, zodiac.Kanya),
	)
	if _, ok := Find(Evaluate(c), "Saraswati Yoga"); ok {
		t.Error("Saraswati fired with Mercury in the 3rd")
	}
}

func TestViparitaRaja(t *testing.T) {
	c := chartOf(zodiac.Mesha, at(zodiac.Mercury, zodiac.Kanya), at(zodiac.Mars, zodiac.Meena))
	rs := Evaluate(c)

	harsha := mustFind(t, rs, "Viparita Raja (Harsha)")
	if harsha.Strength != StrengthStrong || !reflect.DeepEqual(harsha.Houses, []int{6}) {
		t.Errorf("Harsha = %v/%v", harsha.Strength, harsha.Houses)
	}
	sarala := mustFind(t, rs, "Viparita Raja (Sarala)")
	if sarala.Strength != StrengthModerate || !reflect.DeepEqual(sarala.Houses, []int{12}) {
		t.Errorf("Sarala = %v/%v", sarala.Strength, sarala.Houses)
	}
	if _, ok := Find(rs, "Viparita Raja (Vimala)"); ok {
		t.Error("Vimala fired without Jupiter in the chart")
	}
}

func TestNeechabhanga(t *testing.T) {
	// Sun debilitated in Tula; its dispositor Venus sits in the 1st.
	c := chartOf(zodiac.Mesha, at(zodiac.Sun, zodiac.Tula), at(zodiac.Venus, zodiac.Mesha))
	r := mustFind(t, Evaluate(c), "Neechabhanga Raja Yoga")
	if !reflect.DeepEqual(r.Planets, []zodiac.Planet{zodiac.Sun, zodiac.Venus}) {
		t.Errorf("Planets = %v, want [Sun Venus]", r.Planets)
	}
	if !reflect.DeepEqual(r.Houses, []int{7}) || r.Strength != StrengthStrong {
		t.Errorf("Houses/Strength = %v/%v", r.Houses, r.Strength)
	}

	// Moon debilitated in the 8th with no cancellation available.
	c = chartOf(zodiac.Mesha, at(zodiac.Moon, zodiac.Vrishchika))
	if _, ok := Find(Evaluate(c), "Neechabhanga Raja Yoga"); ok {
		t.Error("Neechabhanga fired without a cancelling condition")
	}
}

func TestManglik(t *testing.T) {
	for _, tc := range []struct {
		name string
		c    *chart.Chart
		want Strength
		ok   bool
	}{
		{"Plain", chartOf(zodiac.Mesha, at(zodiac.Mars, zodiac.Karka)), StrengthModerate, true},
		{"OwnSign", chartOf(zodiac.Mesha, at(zodiac.Mars, zodiac.Mesha)), StrengthWeak, true},
		{"JupiterAspect", chartOf(zodiac.Mesha, at(zodiac.Mars, zodiac.Karka), at(zodiac.Jupiter, zodiac.Meena)), StrengthWeak, true},
		{"SafeHouse", chartOf(zodiac.Mesha, at(zodiac.Mars, zodiac.Mithuna)), "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := Find(Evaluate(tc.c), "Manglik Dosha")
			if ok != tc.ok {
				t.Fatalf("present = %v, want %v", ok, tc.ok)
			}
			if ok && r.Strength != tc.want {
				t.Errorf("Strength = %v, want %v", r.Strength, tc.want)
			}
			if ok && (r.Benefic || r.Category != CategoryDosha) {
				t.Errorf("Benefic/Category = %v/%v", r.Benefic, r.Category)
			}
		})
	}
}

func TestKaalSarp(t *testing.T) {
	hemmed := []pos{
		at(zodiac.Rahu, zodiac.Mesha),
		at(zodiac.Ketu, zodiac.Tula),
		at(zodiac.Sun, zodiac.Vrishabha),
		at(zodiac.Moon, zodiac.Mithuna),
		at(zodiac.Mars, zodiac.Karka),
		at(zodiac.Mercury, zodiac.Simha),
		at(zodiac.Jupiter, zodiac.Kanya),
		at(zodiac.Venus, zodiac.Vrishabha),
		at(zodiac.Saturn, zodiac.Mithuna),
	}
	r := mustFind(t, Evaluate(chartOf(zodiac.Mesha, hemmed...)), "Kaal Sarp Yoga")
	if !reflect.DeepEqual(r.Houses, []int{1, 7}) || r.Strength != StrengthStrong {
		t.Errorf("Houses/Strength = %v/%v", r.Houses, r.Strength)
	}

	// All on the other side works too.
	r = mustFind(t, Evaluate(chartOf(zodiac.Tula, hemmed...)), "Kaal Sarp Yoga")
	if !reflect.DeepEqual(r.Houses, []int{7, 1}) {
		t.Errorf("Houses = %v, want [7 1]", r.Houses)
	}

	escaped := append(append([]pos(nil), hemmed[:8]...), at(zodiac.Saturn, zodiac.Dhanu))
	if _, ok := Find(Evaluate(chartOf(zodiac.Mesha, escaped...)), "Kaal Sarp Yoga"); ok {
		t.Error("Kaal Sarp fired with Saturn outside the axis")
	}

	onAxis := append(append([]pos(nil), hemmed[:8]...), at(zodiac.Saturn, zodiac.Tula))
	if _, ok := Find(Evaluate(chartOf(zodiac.Mesha, onAxis...)), "Kaal Sarp Yoga"); ok {
		t.Error("Kaal Sarp fired with Saturn on Ketu")
	}
}

func TestEvaluateOrdersByCategory(t *testing.T) {
	c := chartOf(zodiac.Mesha,
		at(zodiac.Mars, zodiac.Mesha),
		at(zodiac.Jupiter, zodiac.Karka),
		at(zodiac.Moon, zodiac.Karka),
	)
	rs := Evaluate(c)
	if len(rs) == 0 {
		t.Fatal("no yogas")
	}
	last := -1
	for _, r := range rs {
		if !r.Present {
			t.Errorf("%s returned with Present=false", r.Name)
		}
		if rank := r.Category.rank(); rank < last {
			t.Errorf("%s (%v) out of category order", r.Name, r.Category)
		} else {
			last = rank
		}
	}

	g := Group(rs)
	if len(g[CategoryMahapurusha]) != 2 {
		t.Errorf("mahapurusha group = %v, want Ruchaka and Hamsa", names(g[CategoryMahapurusha]))
	}
}

func TestCategoryLabel(t *testing.T) {
	want := map[Category]string{
		CategoryMahapurusha: "Pancha Mahapurusha",
		CategoryRaja:        "Raj Yoga",
		CategoryDhana:       "Wealth (Dhana)",
		CategoryLunar:       "Lunar Yogas",
		CategorySpecial:     "Special Yogas",
		CategoryDosha:       "Doshas",
	}
	for _, c := range Categories() {
		if !c.IsValid() {
			t.Errorf("%v is not valid", c)
		}
		if got := c.Label(); got != want[c] {
			t.Errorf("%v.Label() = %q, want %q", c, got, want[c])
		}
	}
	if Category("bogus").IsValid() {
		t.Error("bogus category reported valid")
	}
}

func TestEvaluate_EmptyChart(t *testing.T) {
	if rs := Evaluate(chartOf(zodiac.Mesha)); len(rs) != 0 {
		t.Errorf("Evaluate(empty) = %v, want none", names(rs))
	}
}

func build(t *testing.T, asc float64, bodies ...ephemeris.Body) *chart.Chart {
	t.Helper()
	c, err := chart.Build(&ephemeris.Snapshot{AscendantLongitude: &asc, Bodies: bodies})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func TestScenarios(t *testing.T) {
	t.Run("RuchakaFromLongitudes", func(t *testing.T) {
		own := build(t, 5, ephemeris.Body{Name: "Mars", Longitude: 15})
		if r := mustFind(t, Evaluate(own), "Ruchaka Yoga"); r.Strength != StrengthModerate {
			t.Errorf("own sign Strength = %v, want moderate", r.Strength)
		}
		exalted := build(t, 275, ephemeris.Body{Name: "Mars", Longitude: 280})
		if r := mustFind(t, Evaluate(exalted), "Ruchaka Yoga"); r.Strength != StrengthStrong {
			t.Errorf("exalted Strength = %v, want strong", r.Strength)
		}
	})

	// Dhanu lagna: Moon in Mesha (5th), Jupiter in Karka (8th), Mars in Mithuna (7th).
	c := build(t, 255,
		ephemeris.Body{Name: "Moon", Longitude: 10},
		ephemeris.Body{Name: "Jupiter", Longitude: 100},
		ephemeris.Body{Name: "Mars", Longitude: 70},
	)
	rs := Evaluate(c)
	t.Run("GajakesariFourthFromMoon", func(t *testing.T) {
		r := mustFind(t, rs, "Gajakesari Yoga")
		if !reflect.DeepEqual(r.Houses, []int{5, 8}) {
			t.Errorf("Houses = %v, want [5 8]", r.Houses)
		}
	})
	t.Run("ManglikUnmitigated", func(t *testing.T) {
		r := mustFind(t, rs, "Manglik Dosha")
		if r.Strength != StrengthModerate || !reflect.DeepEqual(r.Houses, []int{7}) {
			t.Errorf("Strength/Houses = %v/%v, want moderate/[7]", r.Strength, r.Houses)
		}
	})
}
