package match

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/stem/pkg/tracing"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/carolbonk/fairmediator/internal/repositories/mediator"
	"github.com/carolbonk/fairmediator/pkg/events"
	"github.com/carolbonk/fairmediator/pkg/matching"
	"github.com/carolbonk/fairmediator/pkg/metrics"
	"github.com/carolbonk/fairmediator/pkg/models"
)

var validate = validator.New()

// Register registers match routes
func Register(g *echo.Group) {
	g.POST("/search", Search)
	g.POST("/compare", Compare)
	g.POST("/:id/score", ScoreMediator)
}

// SearchRequest is the body of a match search
type SearchRequest struct {
	Criteria models.MatchCriteria `json:"criteria"`
	Weights  models.Weights       `json:"weights,omitempty"`
	Limit    int                  `json:"limit,omitempty" validate:"gte=0"`
	MinScore int                  `json:"min_score,omitempty" validate:"gte=0,lte=100"`
}

// SearchResponse is the ranked result set of a match search
type SearchResponse struct {
	Results []models.MatchResult `json:"results"`
	Total   int                  `json:"total"`
}

// CompareRequest scores an explicit set of mediators side by side
type CompareRequest struct {
	MediatorIDs []string             `json:"mediator_ids" validate:"required,min=1"`
	Criteria    models.MatchCriteria `json:"criteria"`
	Weights     models.Weights       `json:"weights,omitempty"`
}

// ScoreRequest scores a single mediator against criteria
type ScoreRequest struct {
	Criteria models.MatchCriteria `json:"criteria"`
	Weights  models.Weights       `json:"weights,omitempty"`
}

// Search finds and ranks mediators matching the given criteria
func Search(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "match_handler.Search")
	defer span.End()

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, engine, err := ectoinject.GetContext[*matching.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "matching engine unavailable")
	}

	start := time.Now()
	results, err := engine.FindMatchingMediators(ctx, req.Criteria, matching.FindOptions{
		Limit:    req.Limit,
		MinScore: req.MinScore,
		Weights:  req.Weights,
	})
	if err != nil {
		metrics.RecordMatchSearch("error", 0, time.Since(start).Seconds())
		return err
	}
	metrics.RecordMatchSearch("success", len(results), time.Since(start).Seconds())

	emitMatchCompleted(ctx, req.Criteria, results)

	return c.JSON(http.StatusOK, SearchResponse{
		Results: results,
		Total:   len(results),
	})
}

// Compare scores the requested mediators against shared criteria. Unknown
// IDs are omitted from the response.
func Compare(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "match_handler.Compare")
	defer span.End()

	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, engine, err := ectoinject.GetContext[*matching.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "matching engine unavailable")
	}

	results, err := engine.CompareMediators(ctx, req.MediatorIDs, req.Criteria, req.Weights)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Results: results,
		Total:   len(results),
	})
}

// ScoreMediator scores one mediator against the given criteria
func ScoreMediator(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "match_handler.ScoreMediator")
	defer span.End()

	id := c.Param("id")

	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx, repo, err := ectoinject.GetContext[*mediator.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	med, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	ctx, engine, err := ectoinject.GetContext[*matching.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "matching engine unavailable")
	}

	result := engine.Score(med, req.Criteria, req.Weights)
	return c.JSON(http.StatusOK, result)
}

// emitMatchCompleted publishes the analytics event. Best effort only.
func emitMatchCompleted(ctx context.Context, criteria models.MatchCriteria, results []models.MatchResult) {
	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err != nil || emitter == nil {
		return
	}

	if err := emitter.EmitMatchCompleted(ctx, criteria, results); err != nil {
		if ctx, logger, lerr := ectoinject.GetContext[ectologger.Logger](ctx); lerr == nil && logger != nil {
			logger.WithContext(ctx).WithError(err).Warn("Match event emission failed")
		}
	}
}
