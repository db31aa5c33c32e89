package conflicts

import (
	"github.com/carolbonk/fairmediator/pkg/models"
)

// MaxBulkParties caps how many uploaded party names a single bulk screen
// will process. Names past the cap are dropped silently; the cap is a
// performance guard, not an error.
const MaxBulkParties = 1000

// BulkChecker cross-matches an uploaded party list against the whole
// mediator population. Stateless; safe for concurrent use.
type BulkChecker struct{}

// NewBulkChecker creates a new bulk conflict checker
func NewBulkChecker() *BulkChecker {
	return &BulkChecker{}
}

// CheckConflicts screens every party against every mediator's current firm
// and affiliations. Unlike the single-mediator detector, the bulk path does
// not consult case history; with thousands of parties times the full
// mediator pool the case-party loops dominate runtime for matches that the
// per-mediator check surfaces anyway once a candidate is shortlisted.
//
// Each party's pattern is compiled once and reused across the whole pool.
func (c *BulkChecker) CheckConflicts(parties []string, mediators []models.Mediator) *models.BulkConflictReport {
	if len(parties) > MaxBulkParties {
		parties = parties[:MaxBulkParties]
	}

	report := &models.BulkConflictReport{
		Conflicts:      []models.BulkConflictRecord{},
		TotalParties:   len(parties),
		TotalMediators: len(mediators),
	}

	mediatorSet := make(map[string]struct{})
	partySet := make(map[string]struct{})

	for _, party := range parties {
		pattern := NewPartyPattern(party)

		for i := range mediators {
			m := &mediators[i]
			matches := matchAffiliationsOnly(pattern, m)
			if len(matches) == 0 {
				continue
			}

			record := models.BulkConflictRecord{
				Party:          pattern.Name,
				MediatorID:     m.ID,
				MediatorName:   m.Name,
				Matches:        matches,
				Severity:       OverallRisk(matches),
				Recommendation: recommendation(matches),
			}
			report.Conflicts = append(report.Conflicts, record)

			mediatorSet[m.ID] = struct{}{}
			partySet[pattern.Name] = struct{}{}

			switch record.Severity {
			case models.RiskLevelHigh:
				report.Summary.HighSeverity++
			case models.RiskLevelMedium:
				report.Summary.MediumSeverity++
			case models.RiskLevelLow:
				report.Summary.LowSeverity++
			}
		}
	}

	report.TotalConflicts = len(report.Conflicts)
	report.Summary.UniqueMediators = len(mediatorSet)
	report.Summary.UniqueParties = len(partySet)

	return report
}

// matchAffiliationsOnly is the bulk-path subset of MatchMediator: current
// firm and affiliation entries, no case history.
func matchAffiliationsOnly(p PartyPattern, m *models.Mediator) []models.ConflictFinding {
	var findings []models.ConflictFinding

	if p.Matches(m.CurrentFirm) {
		findings = append(findings, models.ConflictFinding{
			EntityName:   m.CurrentFirm,
			EntityType:   models.ConflictEntityCurrentFirm,
			Relationship: "Current firm or employer",
			RiskLevel:    models.RiskLevelHigh,
		})
	}

	for _, aff := range m.Affiliations {
		if !p.Matches(aff.Name) && !p.Matches(aff.Role) {
			continue
		}
		if aff.IsCurrent {
			findings = append(findings, models.ConflictFinding{
				EntityName:   aff.Name,
				EntityType:   models.ConflictEntityAffiliation,
				Relationship: affiliationRelationship("Current", aff),
				RiskLevel:    models.RiskLevelHigh,
			})
		} else {
			findings = append(findings, models.ConflictFinding{
				EntityName:   aff.Name,
				EntityType:   models.ConflictEntityPastAffiliation,
				Relationship: affiliationRelationship("Past", aff),
				RiskLevel:    models.RiskLevelMedium,
			})
		}
	}

	return findings
}

// recommendation picks the fixed review string for a record: any current
// relationship means the mediator must be avoided outright, past ones get
// flagged for human review.
func recommendation(findings []models.ConflictFinding) string {
	for _, f := range findings {
		if f.EntityType == models.ConflictEntityCurrentFirm || f.EntityType == models.ConflictEntityAffiliation {
			return models.RecommendationAvoid
		}
	}
	return models.RecommendationReview
}
