package conflict

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/stem/pkg/tracing"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/carolbonk/fairmediator/internal/repositories/mediator"
	"github.com/carolbonk/fairmediator/pkg/conflicts"
	"github.com/carolbonk/fairmediator/pkg/events"
	"github.com/carolbonk/fairmediator/pkg/graph"
	"github.com/carolbonk/fairmediator/pkg/metrics"
	"github.com/carolbonk/fairmediator/pkg/models"
)

var validate = validator.New()

// Register registers conflict screening routes. Middleware, typically the
// rate limiter, applies to the bulk upload endpoint only.
func Register(g *echo.Group, bulkMiddleware ...echo.MiddlewareFunc) {
	g.POST("/check", Check)
	g.POST("/bulk", BulkCheck, bulkMiddleware...)
}

// CheckRequest screens one mediator against a list of disputing parties
type CheckRequest struct {
	MediatorID string   `json:"mediator_id" validate:"required"`
	Parties    []string `json:"parties" validate:"required,min=1"`
}

// CheckResponse is the result of a single-mediator conflict check
type CheckResponse struct {
	MediatorID   string                   `json:"mediator_id"`
	MediatorName string                   `json:"mediator_name"`
	Findings     []models.ConflictFinding `json:"findings"`
	OverallRisk  models.RiskLevel         `json:"overall_risk"`
}

// Check screens a single mediator for conflicts with the given parties
func Check(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "conflict_handler.Check")
	defer span.End()

	var req CheckRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, repo, err := ectoinject.GetContext[*mediator.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	med, err := repo.Get(ctx, req.MediatorID)
	if err != nil {
		return err
	}

	detector := conflicts.NewDetector()
	findings := detector.DetectConflicts(med, req.Parties)
	overall := conflicts.OverallRisk(findings)
	metrics.RecordConflictCheck(string(overall))

	return c.JSON(http.StatusOK, CheckResponse{
		MediatorID:   med.ID,
		MediatorName: med.Name,
		Findings:     findings,
		OverallRisk:  overall,
	})
}

// BulkCheck screens every mediator on file against an uploaded party list.
// The upload is a CSV or plain-text file in the "file" form field.
func BulkCheck(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "conflict_handler.BulkCheck")
	defer span.End()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "file upload is required")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := conflicts.ValidateFile(fileHeader.Size, contentType); err != nil {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, conflicts.MaxUploadBytes))
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}

	parties := conflicts.ParseParties(string(content), contentType)
	if len(parties) == 0 {
		return httperror.NewHTTPError(http.StatusBadRequest, "no valid party names found in file")
	}

	ctx, repo, err := ectoinject.GetContext[*mediator.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	mediators, err := repo.List(ctx, models.MediatorFilter{})
	if err != nil {
		return err
	}

	start := time.Now()
	checker := conflicts.NewBulkChecker()
	report := checker.CheckConflicts(parties, mediators)
	metrics.RecordBulkScreening("success", report.TotalParties, time.Since(start).Seconds())

	emitScreeningCompleted(ctx, report)
	projectConflictNetwork(ctx, report, mediators)

	return c.JSON(http.StatusOK, report)
}

// emitScreeningCompleted publishes the analytics event. Best effort only.
func emitScreeningCompleted(ctx context.Context, report *models.BulkConflictReport) {
	ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx)
	if err != nil || emitter == nil {
		return
	}

	if err := emitter.EmitScreeningCompleted(ctx, report); err != nil {
		if ctx, logger, lerr := ectoinject.GetContext[ectologger.Logger](ctx); lerr == nil && logger != nil {
			logger.WithContext(ctx).WithError(err).Warn("Screening event emission failed")
		}
	}
}

// projectConflictNetwork records the screening hits in the graph. Best
// effort only.
func projectConflictNetwork(ctx context.Context, report *models.BulkConflictReport, mediators []models.Mediator) {
	ctx, network, err := ectoinject.GetContext[*graph.ConflictNetworkService](ctx)
	if err != nil || network == nil {
		return
	}

	byID := make(map[string]*models.Mediator, len(mediators))
	for i := range mediators {
		byID[mediators[i].ID] = &mediators[i]
	}

	if err := network.RecordReport(ctx, report, byID); err != nil {
		if ctx, logger, lerr := ectoinject.GetContext[ectologger.Logger](ctx); lerr == nil && logger != nil {
			logger.WithContext(ctx).WithError(err).Warn("Conflict network projection failed")
		}
	}
}
