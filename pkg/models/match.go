package models

// IdeologyPreference is a requested ideological leaning for a case
type IdeologyPreference string

const (
	IdeologyVeryLiberal      IdeologyPreference = "very_liberal"
	IdeologyLiberal          IdeologyPreference = "liberal"
	IdeologyNeutral          IdeologyPreference = "neutral"
	IdeologyConservative     IdeologyPreference = "conservative"
	IdeologyVeryConservative IdeologyPreference = "very_conservative"
)

// Range returns the ideology score interval [min, max] the preference maps
// to on the -10 (liberal) to +10 (conservative) scale. Unknown preferences
// map to the neutral band.
func (p IdeologyPreference) Range() (float64, float64) {
	switch p {
	case IdeologyVeryLiberal:
		return -10, -5
	case IdeologyLiberal:
		return -5, -2
	case IdeologyNeutral:
		return -2, 2
	case IdeologyConservative:
		return 2, 5
	case IdeologyVeryConservative:
		return 5, 10
	default:
		return -2, 2
	}
}

// MatchCriteria is a case-scoped query against the mediator pool.
// Constructed per request, never stored.
type MatchCriteria struct {
	Specializations []string           `json:"specializations,omitempty"`
	Ideology        IdeologyPreference `json:"ideology,omitempty"`
	Location        Location           `json:"location,omitempty"`
	Parties         []string           `json:"parties,omitempty"`
}

// Weights maps the five scoring dimensions to their share of the overall
// score. Weights should sum to 1.0 but this is not enforced: a
// non-normalized set simply rescales the overall score, which callers use
// deliberately to boost or mute whole dimensions.
type Weights struct {
	Expertise    float64 `json:"expertise"`
	Experience   float64 `json:"experience"`
	Ideology     float64 `json:"ideology"`
	Location     float64 `json:"location"`
	ConflictRisk float64 `json:"conflict_risk"`
}

// DefaultWeights returns the standard dimension weighting
func DefaultWeights() Weights {
	return Weights{
		Expertise:    0.35,
		Experience:   0.20,
		Ideology:     0.15,
		Location:     0.15,
		ConflictRisk: 0.15,
	}
}

// IsZero reports whether no weight has been set
func (w Weights) IsZero() bool {
	return w.Expertise == 0 && w.Experience == 0 && w.Ideology == 0 &&
		w.Location == 0 && w.ConflictRisk == 0
}

// ScoreBreakdown holds the five dimension scores, each in [0, 100]
type ScoreBreakdown struct {
	Expertise    int `json:"expertise"`
	Experience   int `json:"experience"`
	Ideology     int `json:"ideology"`
	Location     int `json:"location"`
	ConflictRisk int `json:"conflict_risk"`
}

// MatchResult is the score of one mediator against one set of criteria.
// Immutable once created; ordering across a result set is the output
// contract.
type MatchResult struct {
	MediatorID   string         `json:"mediator_id"`
	MediatorName string         `json:"mediator_name"`
	OverallScore int            `json:"overall_score"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Weights      Weights        `json:"weights"`
}
