package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OffersCreated counts offers persisted by the lifecycle engine
	OffersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "offers_created_total",
			Help: "Total number of offers created",
		},
	)

	// OfferTransitions counts status change attempts by the rule that handled
	// them and their outcome
	OfferTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offer_transitions_total",
			Help: "Total number of offer status transitions",
		},
		[]string{"rule", "outcome"},
	)

	// OfferClaimConflicts counts claims lost to a concurrent claimer
	OfferClaimConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "offer_claim_conflicts_total",
			Help: "Total number of claim attempts that lost the race",
		},
	)

	// OfferOperationDuration tracks lifecycle operation latency
	OfferOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "offer_operation_duration_seconds",
			Help:    "Offer operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// ErrorsTotal counts failed operations by component and error kind
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swap_offers_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// Transition outcomes
const (
	OutcomeApplied    = "applied"
	OutcomeRejected   = "rejected"
	OutcomeConflict   = "conflict"
	OutcomeStoreError = "store_error"
)
