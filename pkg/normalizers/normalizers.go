// Package normalizers cleans mediator profile fields before they reach the
// store. Upstream sources deliver inconsistent casing, whitespace, and phone
// formats; the matcher and the store both assume normalized values.
package normalizers

import (
	"strings"
	"unicode"

	"github.com/carolbonk/fairmediator/pkg/models"
)

// NormalizeEmail normalizes an email address (lowercase, trim)
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone removes all non-digit characters from a phone number,
// keeping a leading plus for international numbers
func NormalizePhone(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsDigit(r) || (i == 0 && r == '+') {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// CollapseWhitespace trims and folds runs of whitespace to single spaces
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeMediator cleans a mediator record in place: collapsed whitespace
// on names and firm, lowercased email, digit-only phone, and empty
// affiliations and case parties dropped.
func NormalizeMediator(m *models.Mediator) {
	m.Name = CollapseWhitespace(m.Name)
	m.Email = NormalizeEmail(m.Email)
	m.Phone = NormalizePhone(m.Phone)
	m.CurrentFirm = CollapseWhitespace(m.CurrentFirm)

	for i := range m.Specializations {
		m.Specializations[i] = CollapseWhitespace(m.Specializations[i])
	}

	affiliations := m.Affiliations[:0]
	for _, aff := range m.Affiliations {
		aff.Name = CollapseWhitespace(aff.Name)
		aff.Role = CollapseWhitespace(aff.Role)
		if aff.Name == "" {
			continue
		}
		if aff.Type == "" {
			aff.Type = models.AffiliationTypeOrganization
		}
		affiliations = append(affiliations, aff)
	}
	m.Affiliations = affiliations

	for i := range m.Cases {
		m.Cases[i].CaseName = CollapseWhitespace(m.Cases[i].CaseName)
		parties := m.Cases[i].Parties[:0]
		for _, party := range m.Cases[i].Parties {
			party = CollapseWhitespace(party)
			if party != "" {
				parties = append(parties, party)
			}
		}
		m.Cases[i].Parties = parties
	}
}
