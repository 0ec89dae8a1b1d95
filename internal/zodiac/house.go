package zodiac

// NumHouses is the number of whole-sign houses.
const NumHouses = 12

// HouseOf returns the whole-sign house (1..12) that sign occupies for the given lagna.
func HouseOf(sign, lagna Sign) int {
	return (sign.Index()-lagna.Index()+NumSigns)%NumSigns + 1
}

// SignOfHouse returns the sign occupying house n (1..12) for the given lagna.
func SignOfHouse(lagna Sign, house int) Sign {
	return lagna.Add(house - 1)
}

// HouseDistance counts from one house to another inclusively, so the same
// house is the 1st from itself.
func HouseDistance(from, to int) int {
	return ((to-from+NumHouses)%NumHouses+NumHouses)%NumHouses + 1
}

// HouseFrom returns the house that is the nth counted inclusively from base.
func HouseFrom(base, nth int) int {
	return ((base+nth-2)%NumHouses+NumHouses)%NumHouses + 1
}

// IsKendra reports whether h is an angular house (1, 4, 7, 10).
func IsKendra(h int) bool {
	switch h {
	case 1, 4, 7, 10:
		return true
	}
	return false
}

// IsTrikona reports whether h is a trinal house (1, 5, 9).
func IsTrikona(h int) bool {
	switch h {
	case 1, 5, 9:
		return true
	}
	return false
}

// IsDusthana reports whether h is a difficult house (6, 8, 12).
func IsDusthana(h int) bool {
	switch h {
	case 6, 8, 12:
		return true
	}
	return false
}

// KendraHouses lists the angular houses in order.
func KendraHouses() []int { return []int{1, 4, 7, 10} }

// TrikonaHouses lists the trinal houses in order.
func TrikonaHouses() []int { return []int{1, 5, 9} }
