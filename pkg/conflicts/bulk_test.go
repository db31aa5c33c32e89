package conflicts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carolbonk/fairmediator/pkg/models"
)

func TestCheckConflicts_EmptyParties(t *testing.T) {
	checker := NewBulkChecker()

	report := checker.CheckConflicts(nil, []models.Mediator{
		{ID: "med-1", CurrentFirm: "Acme Law"},
	})

	assert.Empty(t, report.Conflicts)
	assert.Equal(t, 0, report.TotalParties)
	assert.Equal(t, 0, report.TotalConflicts)
	assert.Equal(t, 1, report.TotalMediators)
}

func TestCheckConflicts_PartyCap(t *testing.T) {
	checker := NewBulkChecker()

	parties := make([]string, 1200)
	for i := range parties {
		parties[i] = fmt.Sprintf("Party %04d", i)
	}

	report := checker.CheckConflicts(parties, []models.Mediator{{ID: "med-1"}})

	assert.Equal(t, MaxBulkParties, report.TotalParties)
	assert.Empty(t, report.Conflicts)
}

func TestCheckConflicts_SummaryCardinality(t *testing.T) {
	checker := NewBulkChecker()

	mediators := []models.Mediator{
		{ID: "med-1", Name: "Avery Quinn", CurrentFirm: "Acme Law"},
		{ID: "med-2", Name: "Morgan Lee"},
	}

	report := checker.CheckConflicts([]string{"Acme Law", "Unrelated Name"}, mediators)

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, 1, report.Summary.HighSeverity)
	assert.Equal(t, 0, report.Summary.MediumSeverity)
	assert.Equal(t, 1, report.Summary.UniqueMediators)
	assert.Equal(t, 1, report.Summary.UniqueParties)
	assert.Equal(t, 1, report.TotalConflicts)
}

func TestCheckConflicts_Recommendations(t *testing.T) {
	checker := NewBulkChecker()

	t.Run("current affiliation means avoid", func(t *testing.T) {
		mediators := []models.Mediator{{
			ID: "med-1",
			Affiliations: []models.Affiliation{
				{Type: models.AffiliationTypeClient, Name: "Beta Corp", IsCurrent: true},
			},
		}}

		report := checker.CheckConflicts([]string{"Beta Corp"}, mediators)

		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, models.RecommendationAvoid, report.Conflicts[0].Recommendation)
		assert.Equal(t, models.RiskLevelHigh, report.Conflicts[0].Severity)
	})

	t.Run("past affiliation means review", func(t *testing.T) {
		mediators := []models.Mediator{{
			ID: "med-1",
			Affiliations: []models.Affiliation{
				{Type: models.AffiliationTypeClient, Name: "Beta Corp", IsCurrent: false},
			},
		}}

		report := checker.CheckConflicts([]string{"Beta Corp"}, mediators)

		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, models.RecommendationReview, report.Conflicts[0].Recommendation)
		assert.Equal(t, models.RiskLevelMedium, report.Conflicts[0].Severity)
	})
}

func TestCheckConflicts_NoCaseHistoryInBulkPath(t *testing.T) {
	checker := NewBulkChecker()

	// The bulk path deliberately skips case history; only the per-mediator
	// detector consults it.
	mediators := []models.Mediator{{
		ID: "med-1",
		Cases: []models.CaseRecord{
			{CaseName: "Zeta v. Omega", Parties: []string{"Zeta Industries"}},
		},
	}}

	report := checker.CheckConflicts([]string{"Zeta Industries"}, mediators)
	assert.Empty(t, report.Conflicts)
}

func TestCheckConflicts_OneRecordPerMediatorPartyPair(t *testing.T) {
	checker := NewBulkChecker()

	mediators := []models.Mediator{{
		ID:          "med-1",
		CurrentFirm: "Acme Law",
		Affiliations: []models.Affiliation{
			{Type: models.AffiliationTypeEmployer, Name: "Acme Law", IsCurrent: false},
		},
	}}

	report := checker.CheckConflicts([]string{"Acme Law"}, mediators)

	require.Len(t, report.Conflicts, 1)
	assert.Len(t, report.Conflicts[0].Matches, 2)
	assert.Equal(t, models.RiskLevelHigh, report.Conflicts[0].Severity)
	assert.Equal(t, models.RecommendationAvoid, report.Conflicts[0].Recommendation)
	assert.Equal(t, 1, report.Summary.HighSeverity)
}
