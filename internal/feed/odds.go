package feed

import "sportsbook_api/internal/domain"

// DefaultOdds is the static sportsbook listing served on demand and
// pushed over the live feed.
func DefaultOdds() []domain.MatchOdds {
	return []domain.MatchOdds{
		{Match: "India vs Australia", Odds: map[string]float64{"India": 1.8, "Australia": 2.0}},
		{Match: "Real Madrid vs Barcelona", Odds: map[string]float64{"Madrid": 1.6, "Barca": 2.2}},
	}
}
