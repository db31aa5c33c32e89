package mediator

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Ramsey-B/stem/pkg/tracing"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	mediatorrepo "github.com/carolbonk/fairmediator/internal/repositories/mediator"
	"github.com/carolbonk/fairmediator/pkg/graph"
	"github.com/carolbonk/fairmediator/pkg/models"
)

var validate = validator.New()

// Register registers mediator routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.POST("", Create)
	g.GET("/:id", Get)
	g.PUT("/:id", Update)
	g.DELETE("/:id", Delete)
	g.GET("/:id/conflicts", KnownConflicts)
}

// List returns mediators, optionally narrowed by state or specialization
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "mediator_handler.List")
	defer span.End()

	filter := models.MediatorFilter{
		State: c.QueryParam("state"),
	}
	if spec := c.QueryParam("specialization"); spec != "" {
		filter.Specializations = []string{spec}
	}

	ctx, repo, err := ectoinject.GetContext[*mediatorrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	mediators, err := repo.List(ctx, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mediators)
}

// Create creates a new mediator record
func Create(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "mediator_handler.Create")
	defer span.End()

	var req models.CreateMediatorRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, repo, err := ectoinject.GetContext[*mediatorrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	created, err := repo.Create(ctx, &models.Mediator{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CurrentFirm:     req.CurrentFirm,
		Specializations: req.Specializations,
		YearsExperience: req.YearsExperience,
		IdeologyScore:   req.IdeologyScore,
		Location:        req.Location,
		Affiliations:    req.Affiliations,
		Cases:           req.Cases,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Get returns a mediator by ID
func Get(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "mediator_handler.Get")
	defer span.End()

	ctx, repo, err := ectoinject.GetContext[*mediatorrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	med, err := repo.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, med)
}

// Update applies a partial update to a mediator record
func Update(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "mediator_handler.Update")
	defer span.End()

	var req models.UpdateMediatorRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, repo, err := ectoinject.GetContext[*mediatorrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	med, err := repo.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	applyUpdate(med, &req)

	updated, err := repo.Update(ctx, med)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete soft-deletes a mediator record
func Delete(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "mediator_handler.Delete")
	defer span.End()

	ctx, repo, err := ectoinject.GetContext[*mediatorrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	if err := repo.SoftDelete(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// KnownConflicts returns the conflict network edges recorded for a mediator
// across past screenings
func KnownConflicts(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "mediator_handler.KnownConflicts")
	defer span.End()

	ctx, network, err := ectoinject.GetContext[*graph.ConflictNetworkService](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusServiceUnavailable, "conflict network unavailable")
	}

	edges, err := network.ConflictsForMediator(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, edges)
}

func applyUpdate(m *models.Mediator, req *models.UpdateMediatorRequest) {
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.CurrentFirm != nil {
		m.CurrentFirm = *req.CurrentFirm
	}
	if req.Specializations != nil {
		m.Specializations = req.Specializations
	}
	if req.YearsExperience != nil {
		m.YearsExperience = *req.YearsExperience
	}
	if req.IdeologyScore != nil {
		m.IdeologyScore = *req.IdeologyScore
	}
	if req.Location != nil {
		m.Location = *req.Location
	}
	if req.Affiliations != nil {
		m.Affiliations = req.Affiliations
	}
	if req.Cases != nil {
		m.Cases = req.Cases
	}
}
