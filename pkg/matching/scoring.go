package matching

import (
	"math"
	"strings"

	"github.com/carolbonk/fairmediator/pkg/conflicts"
	"github.com/carolbonk/fairmediator/pkg/models"
)

// Scorer computes the five dimension scores. Every method returns a value
// in [0, 100], rounded to the nearest integer. Stateless; safe for
// concurrent use.
type Scorer struct{}

// NewScorer creates a new Scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// ExpertiseScore is the fraction of required specializations the mediator
// covers, scaled to 0-100. A requirement is covered when it fuzzy-matches
// (case-insensitive substring, either direction) at least one of the
// mediator's specializations. No requirements means a neutral 50.
func (s *Scorer) ExpertiseScore(required, offered []string) int {
	if len(required) == 0 {
		return 50
	}

	matched := 0
	for _, want := range required {
		for _, have := range offered {
			if conflicts.FuzzyContains(want, have) {
				matched++
				break
			}
		}
	}

	return roundScore(float64(matched) / float64(len(required)) * 100)
}

// ExperienceScore maps years of experience onto a step function:
// 0 -> 0, under 3 -> 40, 3-4 -> 60, 5-9 -> 75, 10-14 -> 85, 15-19 -> 95,
// 20 and up -> 100. The breakpoints are load-bearing; downstream score
// expectations are calibrated against them.
func (s *Scorer) ExperienceScore(years int) int {
	switch {
	case years <= 0:
		return 0
	case years < 3:
		return 40
	case years < 5:
		return 60
	case years < 10:
		return 75
	case years < 15:
		return 85
	case years < 20:
		return 95
	default:
		return 100
	}
}

// IdeologyScore is 100 when the mediator's ideology score falls inside the
// band the preference maps to, otherwise it decays by 10 points per unit of
// distance to the nearest band edge, floored at 0. No preference means a
// neutral 50.
func (s *Scorer) IdeologyScore(pref models.IdeologyPreference, score float64) int {
	if pref == "" {
		return 50
	}

	lo, hi := pref.Range()
	if score >= lo && score <= hi {
		return 100
	}

	var distance float64
	if score < lo {
		distance = lo - score
	} else {
		distance = score - hi
	}

	return roundScore(math.Max(0, 100-10*distance))
}

// LocationScore rewards proximity in tiers: same city 100, same state 70,
// same country 40, no overlap 0. When the criteria carry no location
// preference at all the dimension is a neutral 50, consistent with the
// other dimensions' no-constraint convention.
func (s *Scorer) LocationScore(pref, loc models.Location) int {
	if pref.City == "" && pref.State == "" && pref.Country == "" {
		return 50
	}

	switch {
	case pref.City != "" && strings.EqualFold(pref.City, loc.City):
		return 100
	case pref.State != "" && strings.EqualFold(pref.State, loc.State):
		return 70
	case pref.Country != "" && strings.EqualFold(pref.Country, loc.Country):
		return 40
	default:
		return 0
	}
}

// ConflictRiskScore converts conflict findings into a risk dimension:
// 100 when nothing was found, penalized 50 per high, 20 per medium and
// 5 per low finding, floored at 0.
func (s *Scorer) ConflictRiskScore(findings []models.ConflictFinding) int {
	penalty := 0
	for _, f := range findings {
		switch f.RiskLevel {
		case models.RiskLevelHigh:
			penalty += 50
		case models.RiskLevelMedium:
			penalty += 20
		case models.RiskLevelLow:
			penalty += 5
		}
	}

	score := 100 - penalty
	if score < 0 {
		score = 0
	}
	return score
}

// WeightedOverall combines the five dimension scores using the given
// weights. Weights are applied as-is: a set summing to 1.0 keeps the result
// in [0, 100], a non-normalized set rescales it.
func (s *Scorer) WeightedOverall(b models.ScoreBreakdown, w models.Weights) int {
	sum := float64(b.Expertise)*w.Expertise +
		float64(b.Experience)*w.Experience +
		float64(b.Ideology)*w.Ideology +
		float64(b.Location)*w.Location +
		float64(b.ConflictRisk)*w.ConflictRisk
	return roundScore(sum)
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
