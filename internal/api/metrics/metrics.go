// Package metrics defines and registers all custom Prometheus metrics for the
// booking API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens at import time via promauto against the
// default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ---------------------------------------------------------------------------
// Booking lifecycle metrics
// ---------------------------------------------------------------------------

// BookingsCreatedTotal counts newly created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingTransitionsTotal counts successful status transitions.
// Labels:
//   - from: the status the booking left
//   - to: the status the booking entered
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of successful booking status transitions.",
	},
	[]string{"from", "to"},
)

// ---------------------------------------------------------------------------
// Review and cache metrics
// ---------------------------------------------------------------------------

// ReviewsCreatedTotal counts attached reviews.
// Label:
//   - rating: the star value given ("1".."5")
var ReviewsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews attached, by star rating.",
	},
	[]string{"rating"},
)

// RequestErrorsTotal counts requests rejected with a domain error.
// Label:
//   - reason: short error kind (e.g. "invalid_transition", "duplicate_review")
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of requests rejected with a domain error.",
	},
	[]string{"reason"},
)

// SummaryCacheTotal counts rating summary cache lookups.
// Label:
//   - result: "hit" or "miss"
var SummaryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_cache_total",
		Help:      "Total number of rating summary cache lookups, by result.",
	},
	[]string{"result"},
)

// SummaryComputeDuration measures how long a full summary recomputation takes.
var SummaryComputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "summary_compute_duration_seconds",
		Help:      "Duration of rating summary aggregation from the review store.",
		Buckets:   prometheus.DefBuckets,
	},
)
