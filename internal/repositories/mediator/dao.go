package mediator

import (
	"database/sql"
	"time"

	"github.com/Ramsey-B/stem/pkg/database"

	"github.com/carolbonk/fairmediator/pkg/models"
)

const (
	mediatorsTable = "mediators"
)

// MediatorRow represents the database row for a mediator
type MediatorRow struct {
	ID              sql.NullString                       `db:"id"`
	Name            sql.NullString                       `db:"name"`
	Email           sql.NullString                       `db:"email"`
	Phone           sql.NullString                       `db:"phone"`
	CurrentFirm     sql.NullString                       `db:"current_firm"`
	Specializations database.JSONB[[]string]             `db:"specializations"`
	YearsExperience sql.NullInt64                        `db:"years_experience"`
	IdeologyScore   sql.NullFloat64                      `db:"ideology_score"`
	Location        database.JSONB[models.Location]      `db:"location"`
	Affiliations    database.JSONB[[]models.Affiliation] `db:"affiliations"`
	Cases           database.JSONB[[]models.CaseRecord]  `db:"cases"`
	CreatedAt       sql.NullTime                         `db:"created_at"`
	UpdatedAt       sql.NullTime                         `db:"updated_at"`
	DeletedAt       sql.NullTime                         `db:"deleted_at"`
}

var mediatorStruct = database.NewStruct(new(MediatorRow))

// FromMediator converts a domain model to a database row
func FromMediator(m *models.Mediator) *MediatorRow {
	row := &MediatorRow{
		ID:              sql.NullString{String: m.ID, Valid: m.ID != ""},
		Name:            sql.NullString{String: m.Name, Valid: m.Name != ""},
		Email:           sql.NullString{String: m.Email, Valid: m.Email != ""},
		Phone:           sql.NullString{String: m.Phone, Valid: m.Phone != ""},
		CurrentFirm:     sql.NullString{String: m.CurrentFirm, Valid: m.CurrentFirm != ""},
		Specializations: database.JSONB[[]string]{Data: m.Specializations},
		YearsExperience: sql.NullInt64{Int64: int64(m.YearsExperience), Valid: true},
		IdeologyScore:   sql.NullFloat64{Float64: m.IdeologyScore, Valid: true},
		Location:        database.JSONB[models.Location]{Data: m.Location},
		Affiliations:    database.JSONB[[]models.Affiliation]{Data: m.Affiliations},
		Cases:           database.JSONB[[]models.CaseRecord]{Data: m.Cases},
		CreatedAt:       sql.NullTime{Time: m.CreatedAt, Valid: !m.CreatedAt.IsZero()},
		UpdatedAt:       sql.NullTime{Time: m.UpdatedAt, Valid: !m.UpdatedAt.IsZero()},
	}
	if m.DeletedAt != nil {
		row.DeletedAt = sql.NullTime{Time: *m.DeletedAt, Valid: true}
	}
	return row
}

// ToMediator converts a database row to a domain model
func ToMediator(row *MediatorRow) *models.Mediator {
	m := &models.Mediator{
		ID:              row.ID.String,
		Name:            row.Name.String,
		Email:           row.Email.String,
		Phone:           row.Phone.String,
		CurrentFirm:     row.CurrentFirm.String,
		Specializations: row.Specializations.Data,
		YearsExperience: int(row.YearsExperience.Int64),
		IdeologyScore:   row.IdeologyScore.Float64,
		Location:        row.Location.Data,
		Affiliations:    row.Affiliations.Data,
		Cases:           row.Cases.Data,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
	if row.DeletedAt.Valid {
		deletedAt := row.DeletedAt.Time
		m.DeletedAt = &deletedAt
	}
	return m
}

// ToMediators converts a slice of database rows to domain models
func ToMediators(rows []MediatorRow) []models.Mediator {
	mediators := make([]models.Mediator, len(rows))
	for i, row := range rows {
		mediators[i] = *ToMediator(&row)
	}
	return mediators
}

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}
