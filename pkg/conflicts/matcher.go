// Package conflicts implements conflict-of-interest screening between
// disputing parties and mediator affiliation histories.
package conflicts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carolbonk/fairmediator/pkg/models"
)

// FuzzyContains reports whether either string contains the other,
// case-insensitively. Coincidental name overlaps do match; screening errs
// toward flagging.
func FuzzyContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// PartyPattern is a party name compiled once for repeated matching. Regex
// metacharacters in the name are escaped at construction; upload content is
// never compiled verbatim.
type PartyPattern struct {
	Name  string
	re    *regexp.Regexp
	lower string
}

// NewPartyPattern builds the case-insensitive escaped pattern for a party
// name. Build once per party, then test against every candidate string.
func NewPartyPattern(name string) PartyPattern {
	trimmed := strings.TrimSpace(name)
	return PartyPattern{
		Name:  trimmed,
		lower: strings.ToLower(trimmed),
		re:    regexp.MustCompile(`(?i)` + regexp.QuoteMeta(trimmed)),
	}
}

// Matches reports whether a candidate string and the party name overlap.
// Containment is bidirectional: "Acme Law" flags both "Acme Law Group" and
// "Acme".
func (p PartyPattern) Matches(candidate string) bool {
	if p.Name == "" || candidate == "" {
		return false
	}
	if p.re.MatchString(candidate) {
		return true
	}
	return strings.Contains(p.lower, strings.ToLower(candidate))
}

// MatchMediator screens one party pattern against a single mediator's full
// history: current firm, current affiliations, past affiliations, and past
// cases, in that order. Pure function over the in-memory snapshot.
func MatchMediator(p PartyPattern, m *models.Mediator) []models.ConflictFinding {
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

	for _, c := range m.Cases {
		for _, caseParty := range c.Parties {
			if p.Matches(caseParty) {
				findings = append(findings, models.ConflictFinding{
					EntityName:   caseParty,
					EntityType:   models.ConflictEntityCase,
					Relationship: caseRelationship(c),
					RiskLevel:    models.RiskLevelMedium,
				})
				break
			}
		}
	}

	return findings
}

func affiliationRelationship(tense string, aff models.Affiliation) string {
	if aff.Role != "" {
		return fmt.Sprintf("%s %s affiliation as %s", tense, aff.Type, aff.Role)
	}
	return fmt.Sprintf("%s %s affiliation", tense, aff.Type)
}

func caseRelationship(c models.CaseRecord) string {
	if c.Role != "" {
		return fmt.Sprintf("Served as %s in prior case %q", c.Role, c.CaseName)
	}
	return fmt.Sprintf("Participated in prior case %q", c.CaseName)
}
