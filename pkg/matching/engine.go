// Package matching implements the conflict-aware mediator matching engine
package matching

import (
	"context"
	"sort"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/stem/pkg/tracing"

	"github.com/carolbonk/fairmediator/pkg/conflicts"
	"github.com/carolbonk/fairmediator/pkg/models"
)

// MediatorSource provides mediator snapshots to the engine. The store may
// pre-filter coarsely by state and specialization; precise ranking happens
// here.
type MediatorSource interface {
	List(ctx context.Context, filter models.MediatorFilter) ([]models.Mediator, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Mediator, error)
}

// Config contains configuration for the matching engine
type Config struct {
	DefaultLimit int // Results returned when the caller does not set a limit (default: 10)
	MaxLimit     int // Hard cap on requested result counts (default: 100)
}

// DefaultConfig returns default engine configuration
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// Engine scores and ranks mediator candidates against case criteria. It
// holds no per-request state; every call works on its own snapshot and
// returns a fresh result.
type Engine struct {
	logger    ectologger.Logger
	mediators MediatorSource
	detector  *conflicts.Detector
	scorer    *Scorer
	cfg       Config
}

// NewEngine creates a new matching engine
func NewEngine(logger ectologger.Logger, mediators MediatorSource, cfg Config) *Engine {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 10
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 100
	}
	return &Engine{
		logger:    logger,
		mediators: mediators,
		detector:  conflicts.NewDetector(),
		scorer:    NewScorer(),
		cfg:       cfg,
	}
}

// Score computes the five dimension scores for one mediator and combines
// them into an overall score. A zero Weights value falls back to the
// defaults. Pure function of its inputs.
func (e *Engine) Score(mediator *models.Mediator, criteria models.MatchCriteria, weights models.Weights) models.MatchResult {
	if weights.IsZero() {
		weights = models.DefaultWeights()
	}

	conflictRisk := 100 // no parties, no risk
	if len(criteria.Parties) > 0 {
		findings := e.detector.DetectConflicts(mediator, criteria.Parties)
		conflictRisk = e.scorer.ConflictRiskScore(findings)
	}

	breakdown := models.ScoreBreakdown{
		Expertise:    e.scorer.ExpertiseScore(criteria.Specializations, mediator.Specializations),
		Experience:   e.scorer.ExperienceScore(mediator.YearsExperience),
		Ideology:     e.scorer.IdeologyScore(criteria.Ideology, mediator.IdeologyScore),
		Location:     e.scorer.LocationScore(criteria.Location, mediator.Location),
		ConflictRisk: conflictRisk,
	}

	return models.MatchResult{
		MediatorID:   mediator.ID,
		MediatorName: mediator.Name,
		OverallScore: e.scorer.WeightedOverall(breakdown, weights),
		Breakdown:    breakdown,
		Weights:      weights,
	}
}

// FindOptions tunes a FindMatchingMediators call
type FindOptions struct {
	Limit    int
	MinScore int
	Weights  models.Weights
}

// FindMatchingMediators fetches a coarsely pre-filtered candidate pool,
// scores every candidate, drops those below MinScore, and returns the rest
// sorted by overall score descending, truncated to the limit. Equal scores
// keep their pool order. An empty pool yields an empty list, not an error.
func (e *Engine) FindMatchingMediators(ctx context.Context, criteria models.MatchCriteria, opts FindOptions) ([]models.MatchResult, error) {
	ctx, span := tracing.StartSpan(ctx, "matching.Engine.FindMatchingMediators")
	defer span.End()

	log := e.logger.WithContext(ctx).WithFields(map[string]any{
		"specializations": criteria.Specializations,
		"ideology":        criteria.Ideology,
		"party_count":     len(criteria.Parties),
	})

	pool, err := e.mediators.List(ctx, models.MediatorFilter{
		State:           criteria.Location.State,
		Specializations: criteria.Specializations,
	})
	if err != nil {
		log.WithError(err).Error("Failed to fetch mediator pool")
		return nil, err
	}

	results := make([]models.MatchResult, 0, len(pool))
	for i := range pool {
		result := e.Score(&pool[i], criteria, opts.Weights)
		if result.OverallScore < opts.MinScore {
			continue
		}
		results = append(results, result)
	}

	sortResults(results)

	limit := opts.Limit
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}
	if limit > e.cfg.MaxLimit {
		limit = e.cfg.MaxLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	log.WithFields(map[string]any{"pool_size": len(pool), "match_count": len(results)}).Debug("Ranked mediator candidates")

	return results, nil
}

// CompareMediators scores an explicit caller-supplied set for side-by-side
// comparison. No pre-filter and no score floor; IDs the store does not know
// are skipped silently.
func (e *Engine) CompareMediators(ctx context.Context, mediatorIDs []string, criteria models.MatchCriteria, weights models.Weights) ([]models.MatchResult, error) {
	ctx, span := tracing.StartSpan(ctx, "matching.Engine.CompareMediators")
	defer span.End()

	mediators, err := e.mediators.GetByIDs(ctx, mediatorIDs)
	if err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to fetch mediators for comparison")
		return nil, err
	}

	results := make([]models.MatchResult, 0, len(mediators))
	for i := range mediators {
		results = append(results, e.Score(&mediators[i], criteria, weights))
	}

	sortResults(results)

	return results, nil
}

// sortResults orders by overall score descending, keeping input order for
// equal scores so repeated calls over the same pool are deterministic.
func sortResults(results []models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
}
