package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffiliationUnmarshalJSON(t *testing.T) {
	t.Run("bare string", func(t *testing.T) {
		var aff Affiliation
		require.NoError(t, json.Unmarshal([]byte(`"Acme Law Group"`), &aff))

		assert.Equal(t, "Acme Law Group", aff.Name)
		assert.Equal(t, AffiliationTypeOrganization, aff.Type)
		assert.True(t, aff.IsCurrent)
	})

	t.Run("object keyed by name", func(t *testing.T) {
		var aff Affiliation
		require.NoError(t, json.Unmarshal([]byte(`{"type":"employer","name":"Beta Corp","role":"counsel","is_current":false}`), &aff))

		assert.Equal(t, "Beta Corp", aff.Name)
		assert.Equal(t, AffiliationTypeEmployer, aff.Type)
		assert.Equal(t, "counsel", aff.Role)
		assert.False(t, aff.IsCurrent)
	})

	t.Run("object keyed by organization", func(t *testing.T) {
		var aff Affiliation
		require.NoError(t, json.Unmarshal([]byte(`{"organization":"Gamma Partners","is_current":true}`), &aff))

		assert.Equal(t, "Gamma Partners", aff.Name)
		assert.Equal(t, AffiliationTypeOrganization, aff.Type)
		assert.True(t, aff.IsCurrent)
	})

	t.Run("name wins over organization", func(t *testing.T) {
		var aff Affiliation
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Primary","organization":"Secondary"}`), &aff))

		assert.Equal(t, "Primary", aff.Name)
	})

	t.Run("inside a mediator document", func(t *testing.T) {
		payload := `{
			"name": "Jane Arbiter",
			"affiliations": ["Acme Law", {"type": "board", "name": "Ethics Board", "is_current": true}]
		}`

		var m Mediator
		require.NoError(t, json.Unmarshal([]byte(payload), &m))
		require.Len(t, m.Affiliations, 2)
		assert.Equal(t, "Acme Law", m.Affiliations[0].Name)
		assert.Equal(t, AffiliationTypeBoard, m.Affiliations[1].Type)
	})
}

func TestIdeologyPreferenceRange(t *testing.T) {
	tests := []struct {
		pref IdeologyPreference
		lo   float64
		hi   float64
	}{
		{IdeologyVeryLiberal, -10, -5},
		{IdeologyLiberal, -5, -2},
		{IdeologyNeutral, -2, 2},
		{IdeologyConservative, 2, 5},
		{IdeologyVeryConservative, 5, 10},
		{IdeologyPreference("unknown"), -2, 2},
	}

	for _, tt := range tests {
		lo, hi := tt.pref.Range()
		assert.Equal(t, tt.lo, lo, "pref=%s", tt.pref)
		assert.Equal(t, tt.hi, hi, "pref=%s", tt.pref)
	}
}

func TestWeights(t *testing.T) {
	t.Run("defaults sum to one", func(t *testing.T) {
		w := DefaultWeights()
		sum := w.Expertise + w.Experience + w.Ideology + w.Location + w.ConflictRisk
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("zero detection", func(t *testing.T) {
		assert.True(t, Weights{}.IsZero())
		assert.False(t, Weights{Expertise: 0.1}.IsZero())
	})
}
