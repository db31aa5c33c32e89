package models

import (
	"encoding/json"
	"time"
)

// AffiliationType classifies the relationship between a mediator and an entity
type AffiliationType string

const (
	AffiliationTypeEmployer     AffiliationType = "employer"
	AffiliationTypeOrganization AffiliationType = "organization"
	AffiliationTypeClient       AffiliationType = "client"
	AffiliationTypeBoard        AffiliationType = "board"
)

// Affiliation is a recorded relationship between a mediator and an entity.
// Upstream sources deliver affiliations in several shapes (bare strings,
// objects keyed by name or organization); the store normalizes them into
// this single form before they reach the engine.
type Affiliation struct {
	Type      AffiliationType `json:"type"`
	Name      string          `json:"name"`
	Role      string          `json:"role,omitempty"`
	IsCurrent bool            `json:"is_current"`
}

// UnmarshalJSON accepts the shapes upstream sources deliver affiliations in:
// a bare string, an object keyed by "name", or an object keyed by
// "organization". Bare strings are treated as current organization ties.
func (a *Affiliation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*a = Affiliation{
			Type:      AffiliationTypeOrganization,
			Name:      name,
			IsCurrent: true,
		}
		return nil
	}

	type affiliationAlias Affiliation
	var obj struct {
		affiliationAlias
		Organization string `json:"organization"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*a = Affiliation(obj.affiliationAlias)
	if a.Name == "" {
		a.Name = obj.Organization
	}
	if a.Type == "" {
		a.Type = AffiliationTypeOrganization
	}
	return nil
}

// CaseRecord is a past case a mediator participated in
type CaseRecord struct {
	CaseName string   `json:"case_name"`
	Role     string   `json:"role,omitempty"`
	Parties  []string `json:"parties"`
}

// Location is a mediator's practice location
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// Mediator is a neutral third party eligible for selection to resolve a
// dispute. The engine only reads snapshots; records are owned by the store.
type Mediator struct {
	ID              string        `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	Email           string        `json:"email,omitempty" db:"email"`
	Phone           string        `json:"phone,omitempty" db:"phone"`
	CurrentFirm     string        `json:"current_firm,omitempty" db:"current_firm"`
	Specializations []string      `json:"specializations"`
	YearsExperience int           `json:"years_experience" db:"years_experience"`
	IdeologyScore   float64       `json:"ideology_score" db:"ideology_score"`
	Location        Location      `json:"location"`
	Affiliations    []Affiliation `json:"affiliations"`
	Cases           []CaseRecord  `json:"cases"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
	DeletedAt       *time.Time    `json:"deleted_at,omitempty" db:"deleted_at"`
}

// MediatorFilter is the coarse pre-filter applied by the store when listing
// candidates. It narrows the pool cheaply; the scoring engine does the
// precise work.
type MediatorFilter struct {
	State           string
	Specializations []string
	Limit           int
}

// CreateMediatorRequest is the request to create a mediator record
type CreateMediatorRequest struct {
	Name            string        `json:"name" validate:"required"`
	Email           string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string        `json:"phone,omitempty"`
	CurrentFirm     string        `json:"current_firm,omitempty"`
	Specializations []string      `json:"specializations,omitempty"`
	YearsExperience int           `json:"years_experience" validate:"gte=0"`
	IdeologyScore   float64       `json:"ideology_score" validate:"gte=-10,lte=10"`
	Location        Location      `json:"location,omitempty"`
	Affiliations    []Affiliation `json:"affiliations,omitempty"`
	Cases           []CaseRecord  `json:"cases,omitempty"`
}

// UpdateMediatorRequest is the request to update a mediator record
type UpdateMediatorRequest struct {
	Name            *string       `json:"name,omitempty"`
	Email           *string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string       `json:"phone,omitempty"`
	CurrentFirm     *string       `json:"current_firm,omitempty"`
	Specializations []string      `json:"specializations,omitempty"`
	YearsExperience *int          `json:"years_experience,omitempty" validate:"omitempty,gte=0"`
	IdeologyScore   *float64      `json:"ideology_score,omitempty" validate:"omitempty,gte=-10,lte=10"`
	Location        *Location     `json:"location,omitempty"`
	Affiliations    []Affiliation `json:"affiliations,omitempty"`
	Cases           []CaseRecord  `json:"cases,omitempty"`
}
