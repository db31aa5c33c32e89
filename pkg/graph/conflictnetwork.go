package graph

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/stem/pkg/tracing"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/carolbonk/fairmediator/pkg/models"
)

// ConflictNetworkService maintains the party/mediator conflict network.
// Every screened conflict becomes a CONFLICTS_WITH edge so recurring
// party relationships can be explored across screenings.
type ConflictNetworkService struct {
	client *Client
	logger ectologger.Logger
}

// NewConflictNetworkService creates a new conflict network service
func NewConflictNetworkService(client *Client, logger ectologger.Logger) *ConflictNetworkService {
	return &ConflictNetworkService{
		client: client,
		logger: logger,
	}
}

// RecordFindings projects one mediator's conflict findings for a party into
// the graph. Nodes are merged by natural key so repeated screenings update
// rather than duplicate.
func (s *ConflictNetworkService) RecordFindings(ctx context.Context, party string, mediator *models.Mediator, findings []models.ConflictFinding) error {
	ctx, span := tracing.StartSpan(ctx, "graph.ConflictNetworkService.RecordFindings")
	defer span.End()

	if len(findings) == 0 {
		return nil
	}

	cypher := `
		MERGE (p:Party {name: $party})
		MERGE (m:Mediator {id: $mediator_id})
		SET m.name = $mediator_name
		MERGE (p)-[r:CONFLICTS_WITH {entity_name: $entity_name, entity_type: $entity_type}]->(m)
		SET r.relationship = $relationship,
		    r.risk_level = $risk_level,
		    r.screened_at = datetime()
		RETURN r
	`

	_, err := s.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, finding := range findings {
			result, err := tx.Run(ctx, cypher, map[string]any{
				"party":         party,
				"mediator_id":   mediator.ID,
				"mediator_name": mediator.Name,
				"entity_name":   finding.EntityName,
				"entity_type":   string(finding.EntityType),
				"relationship":  finding.Relationship,
				"risk_level":    string(finding.RiskLevel),
			})
			if err != nil {
				return nil, err
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})

	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"party":       party,
			"mediator_id": mediator.ID,
		}).Error("Failed to record conflict findings in graph")
		return fmt.Errorf("failed to record conflict findings in graph: %w", err)
	}

	return nil
}

// RecordReport projects a full bulk screening report into the graph
func (s *ConflictNetworkService) RecordReport(ctx context.Context, report *models.BulkConflictReport, mediatorsByID map[string]*models.Mediator) error {
	ctx, span := tracing.StartSpan(ctx, "graph.ConflictNetworkService.RecordReport")
	defer span.End()

	for i := range report.Conflicts {
		record := &report.Conflicts[i]
		mediator, ok := mediatorsByID[record.MediatorID]
		if !ok {
			continue
		}
		if err := s.RecordFindings(ctx, record.Party, mediator, record.Matches); err != nil {
			return err
		}
	}

	return nil
}

// ConflictEdge is one known conflict between a party and a mediator
type ConflictEdge struct {
	PartyName    string `json:"party_name"`
	MediatorID   string `json:"mediator_id"`
	MediatorName string `json:"mediator_name"`
	EntityName   string `json:"entity_name"`
	EntityType   string `json:"entity_type"`
	Relationship string `json:"relationship"`
	RiskLevel    string `json:"risk_level"`
}

// ConflictsForMediator returns the known conflict edges touching a mediator
func (s *ConflictNetworkService) ConflictsForMediator(ctx context.Context, mediatorID string) ([]ConflictEdge, error) {
	ctx, span := tracing.StartSpan(ctx, "graph.ConflictNetworkService.ConflictsForMediator")
	defer span.End()

	cypher := `
		MATCH (p:Party)-[r:CONFLICTS_WITH]->(m:Mediator {id: $mediator_id})
		RETURN p.name AS party_name, m.id AS mediator_id, m.name AS mediator_name,
		       r.entity_name AS entity_name, r.entity_type AS entity_type,
		       r.relationship AS relationship, r.risk_level AS risk_level
		ORDER BY p.name
	`

	records, err := s.client.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, map[string]any{"mediator_id": mediatorID})
		if err != nil {
			return nil, err
		}

		var edges []ConflictEdge
		for result.Next(ctx) {
			record := result.Record()
			edges = append(edges, ConflictEdge{
				PartyName:    stringValue(record, "party_name"),
				MediatorID:   stringValue(record, "mediator_id"),
				MediatorName: stringValue(record, "mediator_name"),
				EntityName:   stringValue(record, "entity_name"),
				EntityType:   stringValue(record, "entity_type"),
				Relationship: stringValue(record, "relationship"),
				RiskLevel:    stringValue(record, "risk_level"),
			})
		}
		return edges, result.Err()
	})

	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to query conflict network")
		return nil, fmt.Errorf("failed to query conflict network: %w", err)
	}

	edges, _ := records.([]ConflictEdge)
	return edges, nil
}

func stringValue(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}
