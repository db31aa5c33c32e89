package conflicts

import (
	"github.com/carolbonk/fairmediator/pkg/models"
)

// Detector screens a single mediator against a set of disputing parties.
// Stateless; safe for concurrent use.
type Detector struct{}

// NewDetector creates a new conflict detector
func NewDetector() *Detector {
	return &Detector{}
}

// DetectConflicts matches each party against the mediator's affiliation
// history and concatenates the findings. Empty input or no matches yields an
// empty list, never an error.
func (d *Detector) DetectConflicts(mediator *models.Mediator, parties []string) []models.ConflictFinding {
	findings := []models.ConflictFinding{}
	for _, party := range parties {
		pattern := NewPartyPattern(party)
		findings = append(findings, MatchMediator(pattern, mediator)...)
	}
	return findings
}

// OverallRisk aggregates findings by strict severity dominance: the highest
// individual severity wins, no averaging. Empty findings mean no risk.
func OverallRisk(findings []models.ConflictFinding) models.RiskLevel {
	if len(findings) == 0 {
		return models.RiskLevelNone
	}

	highest := models.RiskLevelLow
	for _, f := range findings {
		switch f.RiskLevel {
		case models.RiskLevelHigh:
			return models.RiskLevelHigh
		case models.RiskLevelMedium:
			highest = models.RiskLevelMedium
		}
	}
	return highest
}
