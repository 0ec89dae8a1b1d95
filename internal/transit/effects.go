package transit

import "github.com/alfredjeanlab/kundli/internal/zodiac"

// Quality is the coarse reading of a transit through a natal house.
type Quality string

const (
	Good        Quality = "good"
	Neutral     Quality = "neutral"
	Challenging Quality = "challenging"
)

// Effect is the static reading for one planet in one house.
type Effect struct {
	Quality Quality `json:"quality"`
	Brief   string  `json:"brief"`
}

// defaultEffect is returned for any lookup outside the table.
var defaultEffect = Effect{Neutral, "Transit in progress"}

// effects is indexed by planet, then house-1.
var effects = [zodiac.NumPlanets][zodiac.NumHouses]Effect{
	zodiac.Sun: {
		{Challenging, "Health and ego challenges"},
		{Challenging, "Financial stress"},
		{Good, "Courage and victory"},
		{Challenging, "Domestic unrest"},
		{Neutral, "Mixed results for children"},
		{Good, "Victory over enemies"},
		{Challenging, "Partnership friction"},
		{Challenging, "Health concerns"},
		{Neutral, "Spiritual introspection"},
		{Good, "Career recognition"},
		{Good, "Financial gains"},
		{Challenging, "Expenses and isolation"},
	},
	zodiac.Moon: {
		{Good, "Emotional well-being"},
		{Challenging, "Financial fluctuations"},
		{Good, "Social connections"},
		{Challenging, "Mental restlessness"},
		{Neutral, "Creative thinking"},
		{Challenging, "Health awareness"},
		{Good, "Relationship harmony"},
		{Challenging, "Emotional turbulence"},
		{Good, "Spiritual inclination"},
		{Good, "Public recognition"},
		{Good, "Gains and happiness"},
		{Challenging, "Expenses, need for rest"},
	},
	zodiac.Mars: {
		{Challenging, "Aggression and accidents"},
		{Challenging, "Financial conflicts"},
		{Good, "Courage and initiative"},
		{Challenging, "Property disputes"},
		{Challenging, "Risky decisions"},
		{Good, "Victory over competition"},
		{Challenging, "Relationship conflicts"},
		{Challenging, "Accidents, surgeries"},
		{Neutral, "Active pursuits"},
		{Good, "Career drive"},
		{Good, "Financial gains"},
		{Challenging, "Hidden enemies active"},
	},
	zodiac.Mercury: {
		{Good, "Sharp communication"},
		{Good, "Financial intelligence"},
		{Good, "Learning and travel"},
		{Neutral, "Domestic discussions"},
		{Good, "Creative expression"},
		{Good, "Problem-solving ability"},
		{Good, "Business partnerships"},
		{Neutral, "Research and investigation"},
		{Good, "Higher learning"},
		{Good, "Professional communication"},
		{Good, "Networking gains"},
		{Neutral, "Introspective thinking"},
	},
	zodiac.Jupiter: {
		{Challenging, "Overconfidence, weight gain"},
		{Good, "Wealth accumulation"},
		{Neutral, "Steady progress"},
		{Neutral, "Domestic changes"},
		{Good, "Children, wisdom, fortune"},
		{Challenging, "Debt or health issues"},
		{Good, "Marriage and partnerships"},
		{Challenging, "Obstacles and delays"},
		{Good, "Fortune, spirituality, travel"},
		{Neutral, "Career shifts"},
		{Good, "Major gains and success"},
		{Challenging, "Expenses, spiritual growth"},
	},
	zodiac.Venus: {
		{Good, "Charm and attractiveness"},
		{Good, "Financial prosperity"},
		{Good, "Social enjoyment"},
		{Good, "Domestic happiness"},
		{Good, "Romance and creativity"},
		{Challenging, "Relationship stress"},
		{Good, "Love and harmony"},
		{Neutral, "Hidden attractions"},
		{Good, "Cultural pursuits"},
		{Good, "Career through charm"},
		{Good, "Financial gains"},
		{Neutral, "Private pleasures"},
	},
	zodiac.Saturn: {
		{Challenging, "Hard work, discipline needed"},
		{Challenging, "Financial pressure"},
		{Good, "Determination pays off"},
		{Challenging, "Domestic burdens"},
		{Challenging, "Delayed results"},
		{Good, "Overcoming obstacles"},
		{Challenging, "Relationship tests"},
		{Challenging, "Major life lessons"},
		{Challenging, "Faith tested"},
		{Neutral, "Career responsibility"},
		{Good, "Steady long-term gains"},
		{Challenging, "Isolation, spiritual depth"},
	},
	zodiac.Rahu: {
		{Challenging, "Identity confusion"},
		{Challenging, "Unconventional finances"},
		{Good, "Bold communication"},
		{Challenging, "Domestic disruption"},
		{Challenging, "Risky speculation"},
		{Good, "Victory over enemies"},
		{Challenging, "Unusual relationships"},
		{Challenging, "Sudden transformations"},
		{Neutral, "Unconventional beliefs"},
		{Good, "Ambitious career moves"},
		{Good, "Unexpected gains"},
		{Challenging, "Hidden anxieties"},
	},
	zodiac.Ketu: {
		{Challenging, "Spiritual seeking"},
		{Challenging, "Detachment from wealth"},
		{Good, "Intuitive insights"},
		{Neutral, "Inner searching"},
		{Challenging, "Unconventional thinking"},
		{Good, "Mystical healing"},
		{Challenging, "Relationship detachment"},
		{Neutral, "Occult interests"},
		{Good, "Spiritual breakthroughs"},
		{Challenging, "Career uncertainty"},
		{Good, "Spiritual gains"},
		{Good, "Liberation, moksha"},
	},
}

// Lookup returns the reading for planet p in house h (1..12).
func Lookup(p zodiac.Planet, h int) Effect {
	if !p.IsValid() || h < 1 || h > zodiac.NumHouses {
		return defaultEffect
	}
	return effects[p][h-1]
}
