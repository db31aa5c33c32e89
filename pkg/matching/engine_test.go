package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carolbonk/fairmediator/pkg/models"
)

type stubSource struct {
	mediators []models.Mediator
	listErr   error
}

func (s *stubSource) List(_ context.Context, _ models.MediatorFilter) ([]models.Mediator, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.mediators, nil
}

func (s *stubSource) GetByIDs(_ context.Context, ids []string) ([]models.Mediator, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	byID := make(map[string]models.Mediator, len(s.mediators))
	for _, m := range s.mediators {
		byID[m.ID] = m
	}
	results := make([]models.Mediator, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			results = append(results, m)
		}
	}
	return results, nil
}

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func newTestEngine(mediators ...models.Mediator) *Engine {
	return NewEngine(testLogger(), &stubSource{mediators: mediators}, DefaultConfig())
}

func TestEngineScore(t *testing.T) {
	engine := newTestEngine()

	t.Run("neutral criteria against a veteran", func(t *testing.T) {
		mediator := models.Mediator{
			ID:              "med-1",
			Name:            "Jane Arbiter",
			Specializations: []string{"family law"},
			YearsExperience: 20,
		}

		result := engine.Score(&mediator, models.MatchCriteria{}, models.Weights{})

		assert.Equal(t, models.ScoreBreakdown{
			Expertise:    50,
			Experience:   100,
			Ideology:     50,
			Location:     50,
			ConflictRisk: 100,
		}, result.Breakdown)
		// 0.35*50 + 0.20*100 + 0.15*50 + 0.15*50 + 0.15*100 = 67.5
		assert.Equal(t, 68, result.OverallScore)
		assert.Equal(t, models.DefaultWeights(), result.Weights)
	})

	t.Run("no parties skips conflict detection", func(t *testing.T) {
		mediator := models.Mediator{
			ID:          "med-2",
			CurrentFirm: "Acme Law",
		}

		result := engine.Score(&mediator, models.MatchCriteria{}, models.Weights{})
		assert.Equal(t, 100, result.Breakdown.ConflictRisk)
	})

	t.Run("parties feed conflict detection", func(t *testing.T) {
		mediator := models.Mediator{
			ID:          "med-3",
			CurrentFirm: "Acme Law",
		}

		criteria := models.MatchCriteria{Parties: []string{"Acme Law"}}
		result := engine.Score(&mediator, criteria, models.Weights{})
		assert.Equal(t, 50, result.Breakdown.ConflictRisk)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		mediator := models.Mediator{
			ID:              "med-4",
			Specializations: []string{"employment", "contract"},
			YearsExperience: 7,
			IdeologyScore:   -3,
			Location:        models.Location{City: "Denver", State: "CO", Country: "USA"},
		}
		criteria := models.MatchCriteria{
			Specializations: []string{"employment"},
			Ideology:        models.IdeologyLiberal,
			Location:        models.Location{State: "CO", Country: "USA"},
			Parties:         []string{"Beta Corp"},
		}

		first := engine.Score(&mediator, criteria, models.Weights{})
		second := engine.Score(&mediator, criteria, models.Weights{})
		assert.Equal(t, first, second)
	})
}

func TestFindMatchingMediators(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by overall score descending", func(t *testing.T) {
		engine := newTestEngine(
			models.Mediator{ID: "junior", YearsExperience: 2},
			models.Mediator{ID: "veteran", YearsExperience: 25},
			models.Mediator{ID: "mid", YearsExperience: 8},
		)

		results, err := engine.FindMatchingMediators(ctx, models.MatchCriteria{}, FindOptions{})
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "veteran", results[0].MediatorID)
		assert.Equal(t, "mid", results[1].MediatorID)
		assert.Equal(t, "junior", results[2].MediatorID)
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i].OverallScore, results[i-1].OverallScore)
		}
	})

	t.Run("equal scores keep pool order", func(t *testing.T) {
		engine := newTestEngine(
			models.Mediator{ID: "first", YearsExperience: 10},
			models.Mediator{ID: "second", YearsExperience: 10},
			models.Mediator{ID: "third", YearsExperience: 10},
		)

		results, err := engine.FindMatchingMediators(ctx, models.MatchCriteria{}, FindOptions{})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "first", results[0].MediatorID)
		assert.Equal(t, "second", results[1].MediatorID)
		assert.Equal(t, "third", results[2].MediatorID)
	})

	t.Run("drops results below min score", func(t *testing.T) {
		engine := newTestEngine(
			models.Mediator{ID: "junior", YearsExperience: 2},
			models.Mediator{ID: "veteran", YearsExperience: 25},
		)

		results, err := engine.FindMatchingMediators(ctx, models.MatchCriteria{}, FindOptions{MinScore: 60})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "veteran", results[0].MediatorID)
	})

	t.Run("truncates to the requested limit", func(t *testing.T) {
		engine := newTestEngine(
			models.Mediator{ID: "a", YearsExperience: 25},
			models.Mediator{ID: "b", YearsExperience: 15},
			models.Mediator{ID: "c", YearsExperience: 5},
		)

		results, err := engine.FindMatchingMediators(ctx, models.MatchCriteria{}, FindOptions{Limit: 2})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "a", results[0].MediatorID)
		assert.Equal(t, "b", results[1].MediatorID)
	})

	t.Run("caps the limit at the configured maximum", func(t *testing.T) {
		mediators := make([]models.Mediator, 5)
		for i := range mediators {
			mediators[i] = models.Mediator{ID: string(rune('a' + i)), YearsExperience: 10}
		}
		engine := NewEngine(testLogger(), &stubSource{mediators: mediators}, Config{DefaultLimit: 10, MaxLimit: 3})

		results, err := engine.FindMatchingMediators(ctx, models.MatchCriteria{}, FindOptions{Limit: 500})
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("empty pool yields an empty list", func(t *testing.T) {
		engine := newTestEngine()

		results, err := engine.FindMatchingMediators(ctx, models.MatchCriteria{}, FindOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("store error is returned", func(t *testing.T) {
		engine := NewEngine(testLogger(), &stubSource{listErr: errors.New("db down")}, DefaultConfig())

		_, err := engine.FindMatchingMediators(ctx, models.MatchCriteria{}, FindOptions{})
		assert.Error(t, err)
	})
}

func TestCompareMediators(t *testing.T) {
	ctx := context.Background()

	t.Run("scores every known mediator with no floor", func(t *testing.T) {
		engine := newTestEngine(
			models.Mediator{ID: "low", YearsExperience: 0},
			models.Mediator{ID: "high", YearsExperience: 25},
		)

		results, err := engine.CompareMediators(ctx, []string{"low", "high"}, models.MatchCriteria{}, models.Weights{})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "high", results[0].MediatorID)
		assert.Equal(t, "low", results[1].MediatorID)
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		engine := newTestEngine(models.Mediator{ID: "known", YearsExperience: 10})

		results, err := engine.CompareMediators(ctx, []string{"known", "missing"}, models.MatchCriteria{}, models.Weights{})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "known", results[0].MediatorID)
	})
}
