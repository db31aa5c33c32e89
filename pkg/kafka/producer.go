// Package kafka publishes match and screening lifecycle events
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/stem/pkg/tracing"
	"github.com/segmentio/kafka-go"

	"github.com/carolbonk/fairmediator/pkg/metrics"
)

// Producer handles Kafka event emission
type Producer struct {
	writer         *kafka.Writer
	logger         ectologger.Logger
	matchTopic     string
	screeningTopic string
}

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers        []string
	MatchTopic     string
	ScreeningTopic string
	BatchSize      int
	BatchTimeout   time.Duration
	RequiredAcks   int
	Compression    string
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg ProducerConfig, logger ectologger.Logger) *Producer {
	compression := kafka.Snappy
	switch cfg.Compression {
	case "gzip":
		compression = kafka.Gzip
	case "lz4":
		compression = kafka.Lz4
	case "zstd":
		compression = kafka.Zstd
	case "none":
		compression = 0
	}

	requiredAcks := kafka.RequiredAcks(cfg.RequiredAcks)

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           requiredAcks,
		Compression:            compression,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer:         writer,
		logger:         logger,
		matchTopic:     cfg.MatchTopic,
		screeningTopic: cfg.ScreeningTopic,
	}
}

// Close closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// MatchEvent records a completed mediator match search
type MatchEvent struct {
	EventType     string          `json:"event_type"`
	RequestID     string          `json:"request_id"`
	Criteria      json.RawMessage `json:"criteria,omitempty"`
	ResultCount   int             `json:"result_count"`
	TopMediatorID string          `json:"top_mediator_id,omitempty"`
	TopScore      int             `json:"top_score,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ScreeningEvent records a completed bulk conflict screening
type ScreeningEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id"`
	TotalParties   int       `json:"total_parties"`
	TotalMediators int       `json:"total_mediators"`
	TotalConflicts int       `json:"total_conflicts"`
	HighSeverity   int       `json:"high_severity"`
	MediumSeverity int       `json:"medium_severity"`
	LowSeverity    int       `json:"low_severity"`
	Timestamp      time.Time `json:"timestamp"`
}

// PublishMatchEvent publishes a match completed event to Kafka
func (p *Producer) PublishMatchEvent(ctx context.Context, event *MatchEvent) error {
	ctx, span := tracing.StartSpan(ctx, "kafka.Producer.PublishMatchEvent")
	defer span.End()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: p.matchTopic,
		Key:   []byte(event.RequestID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.RecordKafkaPublish(p.matchTopic, "error")
		p.logger.WithContext(ctx).WithError(err).Error("Failed to publish match event")
		return err
	}
	metrics.RecordKafkaPublish(p.matchTopic, "success")

	p.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type":   event.EventType,
		"request_id":   event.RequestID,
		"result_count": event.ResultCount,
	}).Debug("Published match event")

	return nil
}

// PublishScreeningEvent publishes a screening completed event to Kafka
func (p *Producer) PublishScreeningEvent(ctx context.Context, event *ScreeningEvent) error {
	ctx, span := tracing.StartSpan(ctx, "kafka.Producer.PublishScreeningEvent")
	defer span.End()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: p.screeningTopic,
		Key:   []byte(event.RequestID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.RecordKafkaPublish(p.screeningTopic, "error")
		p.logger.WithContext(ctx).WithError(err).Error("Failed to publish screening event")
		return err
	}
	metrics.RecordKafkaPublish(p.screeningTopic, "success")

	p.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type":      event.EventType,
		"request_id":      event.RequestID,
		"total_conflicts": event.TotalConflicts,
	}).Debug("Published screening event")

	return nil
}
