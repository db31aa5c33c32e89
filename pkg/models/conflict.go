package models

// RiskLevel classifies the severity of a conflict finding or an aggregate
type RiskLevel string

const (
	RiskLevelNone   RiskLevel = "none"
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// ConflictEntityType identifies which part of a mediator's history a party
// name matched against
type ConflictEntityType string

const (
	ConflictEntityCurrentFirm     ConflictEntityType = "current_firm"
	ConflictEntityAffiliation     ConflictEntityType = "affiliation"
	ConflictEntityPastAffiliation ConflictEntityType = "past_affiliation"
	ConflictEntityCase            ConflictEntityType = "case"
)

// ConflictFinding is one detected overlap between a disputing party and a
// mediator's affiliation history. Produced per (mediator, party) pair and
// never persisted.
type ConflictFinding struct {
	EntityName   string             `json:"entity_name"`
	EntityType   ConflictEntityType `json:"entity_type"`
	Relationship string             `json:"relationship"`
	RiskLevel    RiskLevel          `json:"risk_level"`
}

// Bulk screening recommendations. Fixed strings consumed verbatim by the
// review UI.
const (
	RecommendationAvoid  = "AVOID - Current conflict of interest detected"
	RecommendationReview = "REVIEW - Past affiliation found, further review recommended"
)

// BulkConflictRecord is one mediator x party hit from a bulk screen
type BulkConflictRecord struct {
	Party          string            `json:"party"`
	MediatorID     string            `json:"mediator_id"`
	MediatorName   string            `json:"mediator_name"`
	Matches        []ConflictFinding `json:"matches"`
	Severity       RiskLevel         `json:"severity"`
	Recommendation string            `json:"recommendation"`
}

// BulkSummary aggregates a bulk screen. UniqueMediators and UniqueParties
// are cardinalities of the distinct values appearing in any record, not
// record counts.
type BulkSummary struct {
	HighSeverity    int `json:"high_severity"`
	MediumSeverity  int `json:"medium_severity"`
	LowSeverity     int `json:"low_severity"`
	UniqueMediators int `json:"unique_mediators"`
	UniqueParties   int `json:"unique_parties"`
}

// BulkConflictReport is the full response payload of a bulk screen
type BulkConflictReport struct {
	Conflicts      []BulkConflictRecord `json:"conflicts"`
	Summary        BulkSummary          `json:"summary"`
	TotalParties   int                  `json:"total_parties"`
	TotalMediators int                  `json:"total_mediators"`
	TotalConflicts int                  `json:"total_conflicts"`
}
