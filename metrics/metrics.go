// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	// HTTP metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lookup_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// Lookup metrics
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_records_total",
			Help: "Total number of record lookups by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)

	RowsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_rows_returned_total",
			Help: "Total child rows returned by lookups",
		},
		[]string{"entity", "kind"},
	)

	// Degraded responses, e.g. electrical items unavailable
	DegradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_degraded_responses_total",
			Help: "Successful responses served without optional data",
		},
		[]string{"entity", "reason"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordLookup records the outcome of a burner or job lookup
func RecordLookup(entity, outcome string) {
	LookupsTotal.WithLabelValues(entity, outcome).Inc()
}

// RecordRows records child rows returned for an entity
func RecordRows(entity, kind string, n int) {
	RowsReturned.WithLabelValues(entity, kind).Add(float64(n))
}

// RecordDegraded records a response served without optional data
func RecordDegraded(entity, reason string) {
	DegradedTotal.WithLabelValues(entity, reason).Inc()
}

// Handler returns the Prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}
