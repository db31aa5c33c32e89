package conflicts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carolbonk/fairmediator/pkg/models"
)

func TestFuzzyContains(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"exact match", "Acme Law", "Acme Law", true},
		{"case insensitive", "ACME law", "acme LAW", true},
		{"a contains b", "Acme Law Group", "Acme Law", true},
		{"b contains a", "Acme", "Acme Law Group", true},
		{"no overlap", "Acme Law", "Beta Corp", false},
		{"empty a", "", "Acme", false},
		{"empty b", "Acme", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FuzzyContains(tt.a, tt.b))
		})
	}
}

func TestPartyPattern_EscapesMetacharacters(t *testing.T) {
	t.Run("parentheses are literal", func(t *testing.T) {
		p := NewPartyPattern("Acme (Holdings) LLC")
		assert.True(t, p.Matches("acme (holdings) llc subsidiaries"))
		assert.False(t, p.Matches("Acme Holdings LLC"))
	})

	t.Run("dot star does not wildcard", func(t *testing.T) {
		p := NewPartyPattern("A.*Z Trading")
		assert.False(t, p.Matches("ABZ Trading"))
		assert.True(t, p.Matches("a.*z trading co"))
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		p := NewPartyPattern("  Beta Corp  ")
		assert.Equal(t, "Beta Corp", p.Name)
		assert.True(t, p.Matches("Beta Corp"))
	})

	t.Run("empty pattern never matches", func(t *testing.T) {
		p := NewPartyPattern("   ")
		assert.False(t, p.Matches("anything"))
	})
}

func TestPartyPattern_BidirectionalContainment(t *testing.T) {
	p := NewPartyPattern("Acme Law Group")

	// candidate contains party
	assert.True(t, p.Matches("The Acme Law Group of Nevada"))
	// party contains candidate
	assert.True(t, p.Matches("Acme Law"))
	assert.False(t, p.Matches("Gamma Partners"))
}

func TestMatchMediator_CurrentFirm(t *testing.T) {
	mediator := &models.Mediator{
		ID:          "med-1",
		Name:        "Jordan Reyes",
		CurrentFirm: "Acme Law",
	}

	findings := MatchMediator(NewPartyPattern("Acme Law Group"), mediator)

	require.Len(t, findings, 1)
	assert.Equal(t, models.ConflictEntityCurrentFirm, findings[0].EntityType)
	assert.Equal(t, models.RiskLevelHigh, findings[0].RiskLevel)
	assert.Equal(t, "Acme Law", findings[0].EntityName)
}

func TestMatchMediator_AffiliationRoleMatch(t *testing.T) {
	mediator := &models.Mediator{
		ID: "med-2",
		Affiliations: []models.Affiliation{
			{Type: models.AffiliationTypeBoard, Name: "Delta Foundation", Role: "Trustee for Epsilon Trust", IsCurrent: true},
		},
	}

	findings := MatchMediator(NewPartyPattern("Epsilon Trust"), mediator)

	require.Len(t, findings, 1)
	assert.Equal(t, models.ConflictEntityAffiliation, findings[0].EntityType)
	assert.Equal(t, models.RiskLevelHigh, findings[0].RiskLevel)
	assert.Equal(t, "Delta Foundation", findings[0].EntityName)
}

func TestMatchMediator_CaseHistory(t *testing.T) {
	mediator := &models.Mediator{
		ID: "med-3",
		Cases: []models.CaseRecord{
			{CaseName: "Zeta v. Omega", Role: "arbitrator", Parties: []string{"Zeta Industries", "Omega Supply"}},
		},
	}

	t.Run("party in case is flagged once", func(t *testing.T) {
		findings := MatchMediator(NewPartyPattern("Zeta Industries"), mediator)
		require.Len(t, findings, 1)
		assert.Equal(t, models.ConflictEntityCase, findings[0].EntityType)
		assert.Equal(t, models.RiskLevelMedium, findings[0].RiskLevel)
	})

	t.Run("unrelated party is clean", func(t *testing.T) {
		findings := MatchMediator(NewPartyPattern("Theta Logistics"), mediator)
		assert.Empty(t, findings)
	})
}
