package domain

// MatchOdds is one entry of the sportsbook listing: a match name and
// the decimal odds offered per side.
type MatchOdds struct {
	Match string             `json:"match"`
	Odds  map[string]float64 `json:"odds"`
}
