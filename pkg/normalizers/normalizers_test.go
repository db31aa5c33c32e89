package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carolbonk/fairmediator/pkg/models"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "3035551234", NormalizePhone("(303) 555-1234"))
	assert.Equal(t, "+13035551234", NormalizePhone("+1 303 555 1234"))
	assert.Equal(t, "3035551234", NormalizePhone("303.555.1234 ext"))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "Acme Law Group", CollapseWhitespace("  Acme   Law\tGroup "))
	assert.Equal(t, "", CollapseWhitespace("   "))
}

func TestNormalizeMediator(t *testing.T) {
	m := &models.Mediator{
		Name:            "  Jane   Arbiter ",
		Email:           "Jane@Example.com",
		Phone:           "(303) 555-1234",
		CurrentFirm:     " Acme  Law ",
		Specializations: []string{" family   law "},
		Affiliations: []models.Affiliation{
			{Name: "  Ethics  Board ", Role: " chair "},
			{Name: "   "},
		},
		Cases: []models.CaseRecord{
			{CaseName: " Smith  v  Jones ", Parties: []string{" Smith ", "", "Jones"}},
		},
	}

	NormalizeMediator(m)

	assert.Equal(t, "Jane Arbiter", m.Name)
	assert.Equal(t, "jane@example.com", m.Email)
	assert.Equal(t, "3035551234", m.Phone)
	assert.Equal(t, "Acme Law", m.CurrentFirm)
	assert.Equal(t, []string{"family law"}, m.Specializations)

	// blank affiliation dropped, empty type defaulted
	assert.Len(t, m.Affiliations, 1)
	assert.Equal(t, "Ethics Board", m.Affiliations[0].Name)
	assert.Equal(t, "chair", m.Affiliations[0].Role)
	assert.Equal(t, models.AffiliationTypeOrganization, m.Affiliations[0].Type)

	assert.Equal(t, "Smith v Jones", m.Cases[0].CaseName)
	assert.Equal(t, []string{"Smith", "Jones"}, m.Cases[0].Parties)
}
