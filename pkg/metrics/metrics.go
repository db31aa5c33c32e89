// Package metrics provides Prometheus metrics for the mediator matching service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchSearchesTotal tracks mediator match searches by status
	MatchSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fairmediator",
			Subsystem: "matching",
			Name:      "searches_total",
			Help:      "Total number of mediator match searches by status",
		},
		[]string{"status"},
	)

	// MatchSearchDuration tracks match search duration in seconds
	MatchSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fairmediator",
			Subsystem: "matching",
			Name:      "search_duration_seconds",
			Help:      "Duration of mediator match searches in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// MatchCandidatesScored tracks how many candidates each search scored
	MatchCandidatesScored = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fairmediator",
			Subsystem: "matching",
			Name:      "candidates_scored",
			Help:      "Number of mediator candidates scored per search",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// ConflictChecksTotal tracks single-mediator conflict checks by risk level
	ConflictChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fairmediator",
			Subsystem: "conflicts",
			Name:      "checks_total",
			Help:      "Total number of conflict checks by overall risk level",
		},
		[]string{"risk_level"},
	)

	// BulkScreeningsTotal tracks bulk conflict screenings by status
	BulkScreeningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fairmediator",
			Subsystem: "conflicts",
			Name:      "bulk_screenings_total",
			Help:      "Total number of bulk conflict screenings by status",
		},
		[]string{"status"},
	)

	// BulkScreeningDuration tracks bulk screening duration in seconds
	BulkScreeningDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fairmediator",
			Subsystem: "conflicts",
			Name:      "bulk_screening_duration_seconds",
			Help:      "Duration of bulk conflict screenings in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// BulkScreeningParties tracks how many parties each screening covered
	BulkScreeningParties = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fairmediator",
			Subsystem: "conflicts",
			Name:      "bulk_screening_parties",
			Help:      "Number of parties screened per bulk conflict check",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// KafkaMessagesPublished tracks Kafka messages published
	KafkaMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fairmediator",
			Subsystem: "kafka",
			Name:      "messages_published_total",
			Help:      "Total number of messages published to Kafka",
		},
		[]string{"topic", "status"},
	)

	// RateLimitHits tracks requests rejected by the rate limiter
	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fairmediator",
			Subsystem: "ratelimit",
			Name:      "hits_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
		[]string{"limit_name"},
	)

	// DatabaseQueryDuration tracks database query duration
	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fairmediator",
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Duration of database queries in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)
)

// RecordMatchSearch records a match search metric
func RecordMatchSearch(status string, candidates int, durationSeconds float64) {
	MatchSearchesTotal.WithLabelValues(status).Inc()
	MatchSearchDuration.Observe(durationSeconds)
	MatchCandidatesScored.Observe(float64(candidates))
}

// RecordConflictCheck records a single-mediator conflict check
func RecordConflictCheck(riskLevel string) {
	ConflictChecksTotal.WithLabelValues(riskLevel).Inc()
}

// RecordBulkScreening records a bulk screening metric
func RecordBulkScreening(status string, parties int, durationSeconds float64) {
	BulkScreeningsTotal.WithLabelValues(status).Inc()
	BulkScreeningDuration.Observe(durationSeconds)
	BulkScreeningParties.Observe(float64(parties))
}

// RecordKafkaPublish records a Kafka publish operation
func RecordKafkaPublish(topic, status string) {
	KafkaMessagesPublished.WithLabelValues(topic, status).Inc()
}
