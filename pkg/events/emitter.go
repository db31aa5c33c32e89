// Package events handles event emission for match and screening outcomes
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/stem/pkg/tracing"
	"github.com/google/uuid"

	"github.com/carolbonk/fairmediator/pkg/kafka"
	"github.com/carolbonk/fairmediator/pkg/models"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

const (
	EventTypeMatchCompleted     = "match.completed"
	EventTypeScreeningCompleted = "screening.completed"
)

// Emitter publishes lifecycle events. Emission is best effort: callers log
// failures but never fail the request over them.
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitMatchCompleted emits a match completed event for a finished search
func (e *Emitter) EmitMatchCompleted(ctx context.Context, criteria models.MatchCriteria, results []models.MatchResult) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitMatchCompleted")
	defer span.End()

	criteriaJSON, _ := json.Marshal(criteria)

	event := &kafka.MatchEvent{
		EventType:   EventTypeMatchCompleted,
		RequestID:   uuid.New().String(),
		Criteria:    criteriaJSON,
		ResultCount: len(results),
	}
	if len(results) > 0 {
		event.TopMediatorID = results[0].MediatorID
		event.TopScore = results[0].OverallScore
	}

	if err := e.producer.PublishMatchEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit match.completed event")
		return err
	}

	return nil
}

// EmitScreeningCompleted emits a screening completed event for a bulk check
func (e *Emitter) EmitScreeningCompleted(ctx context.Context, report *models.BulkConflictReport) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitScreeningCompleted")
	defer span.End()

	event := &kafka.ScreeningEvent{
		EventType:      EventTypeScreeningCompleted,
		RequestID:      uuid.New().String(),
		TotalParties:   report.TotalParties,
		TotalMediators: report.TotalMediators,
		TotalConflicts: report.TotalConflicts,
		HighSeverity:   report.Summary.HighSeverity,
		MediumSeverity: report.Summary.MediumSeverity,
		LowSeverity:    report.Summary.LowSeverity,
	}

	if err := e.producer.PublishScreeningEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit screening.completed event")
		return err
	}

	return nil
}
