package mediator

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/stem/pkg/database"
	"github.com/Ramsey-B/stem/pkg/tracing"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/lib/pq"

	"github.com/carolbonk/fairmediator/pkg/models"
	"github.com/carolbonk/fairmediator/pkg/normalizers"
)

// MediatorRepository defines the interface for mediator data access
type MediatorRepository interface {
	Create(ctx context.Context, mediator *models.Mediator) (*models.Mediator, error)
	Get(ctx context.Context, id string) (*models.Mediator, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Mediator, error)
	List(ctx context.Context, filter models.MediatorFilter) ([]models.Mediator, error)
	Update(ctx context.Context, mediator *models.Mediator) (*models.Mediator, error)
	SoftDelete(ctx context.Context, id string) error
}

// Repository implements MediatorRepository on Postgres
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new mediator repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new mediator record
func (r *Repository) Create(ctx context.Context, mediator *models.Mediator) (*models.Mediator, error) {
	ctx, span := tracing.StartSpan(ctx, "mediator.Repository.Create")
	defer span.End()

	if mediator.ID == "" {
		mediator.ID = uuid.New().String()
	}
	normalizers.NormalizeMediator(mediator)
	now := Now()
	mediator.CreatedAt = now
	mediator.UpdatedAt = now

	row := FromMediator(mediator)
	ib := mediatorStruct.InsertInto(mediatorsTable, row)
	query, args := ib.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to create mediator")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create mediator")
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": mediator.ID, "name": mediator.Name}).Info("Created mediator")
	return mediator, nil
}

// Get retrieves a mediator by ID
func (r *Repository) Get(ctx context.Context, id string) (*models.Mediator, error) {
	ctx, span := tracing.StartSpan(ctx, "mediator.Repository.Get")
	defer span.End()

	sb := mediatorStruct.SelectFrom(mediatorsTable)
	sb.Where(
		sb.Equal("id", id),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	var row MediatorRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("mediator %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get mediator")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get mediator")
	}

	return ToMediator(&row), nil
}

// GetByIDs retrieves the mediators for the given IDs. IDs with no record are
// omitted from the result rather than treated as an error.
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]models.Mediator, error) {
	ctx, span := tracing.StartSpan(ctx, "mediator.Repository.GetByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	sb := mediatorStruct.SelectFrom(mediatorsTable)
	sb.Where(
		sb.In("id", sqlbuilder.Flatten(ids)...),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	var rows []MediatorRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get mediators by IDs")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get mediators")
	}

	return ToMediators(rows), nil
}

// List retrieves mediators matching the coarse filter. The filter narrows the
// candidate pool cheaply; precise ranking is the matching engine's job.
func (r *Repository) List(ctx context.Context, filter models.MediatorFilter) ([]models.Mediator, error) {
	ctx, span := tracing.StartSpan(ctx, "mediator.Repository.List")
	defer span.End()

	sb := mediatorStruct.SelectFrom(mediatorsTable)
	sb.Where(sb.IsNull("deleted_at"))

	if filter.State != "" {
		sb.Where(fmt.Sprintf("LOWER(location ->> 'state') = LOWER(%s)", sb.Var(filter.State)))
	}
	if len(filter.Specializations) > 0 {
		// jsonb "contains any of" against the requested specializations
		sb.Where(fmt.Sprintf("specializations ?| %s", sb.Var(pq.Array(filter.Specializations))))
	}

	sb.OrderBy("created_at").Asc()
	if filter.Limit > 0 {
		sb.Limit(filter.Limit)
	}

	query, args := sb.Build()
	var rows []MediatorRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list mediators")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list mediators")
	}

	return ToMediators(rows), nil
}

// Update replaces a mediator's record
func (r *Repository) Update(ctx context.Context, mediator *models.Mediator) (*models.Mediator, error) {
	ctx, span := tracing.StartSpan(ctx, "mediator.Repository.Update")
	defer span.End()

	normalizers.NormalizeMediator(mediator)
	mediator.UpdatedAt = Now()

	row := FromMediator(mediator)
	ub := mediatorStruct.Update(mediatorsTable, row)
	ub.Where(
		ub.Equal("id", mediator.ID),
		ub.IsNull("deleted_at"),
	)

	query, args := ub.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update mediator")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update mediator")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("mediator %s not found", mediator.ID))
	}

	return mediator, nil
}

// SoftDelete marks a mediator as deleted
func (r *Repository) SoftDelete(ctx context.Context, id string) error {
	ctx, span := tracing.StartSpan(ctx, "mediator.Repository.SoftDelete")
	defer span.End()

	ub := database.NewUpdateBuilder()
	ub.Update(mediatorsTable)
	ub.Set(ub.Assign("deleted_at", Now()))
	ub.Where(
		ub.Equal("id", id),
		ub.IsNull("deleted_at"),
	)

	query, args := ub.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to soft delete mediator")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete mediator")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("mediator %s not found", id))
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": id}).Info("Soft deleted mediator")
	return nil
}
