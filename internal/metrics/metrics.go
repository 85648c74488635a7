// Package metrics provides Prometheus instrumentation for the planner
// server: HTTP traffic, store operations, schedule activity, profile
// migrations and catalog reloads. Metrics are registered with the default
// registry and exposed at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campfinder"

var (
	// HTTP Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Number of API requests currently being served",
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
	)

	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of store operations in seconds",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"backend", "operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Total number of failed store operations",
		},
		[]string{"backend", "operation"},
	)

	// MalformedState counts stored documents that could not be decoded and
	// were treated as absent.
	MalformedState = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_state_total",
			Help:      "Stored documents that failed to decode and were treated as absent",
		},
		[]string{"kind"}, // "profile", "schedule"
	)

	// Planner Metrics
	AssignmentsCycled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignments_cycled_total",
			Help:      "Total number of schedule cell transitions by resulting state",
		},
		[]string{"state"}, // "unassigned", "single", "all"
	)

	ProfileMigrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_migrations_total",
			Help:      "Profile migration steps applied on load",
		},
		[]string{"change"},
	)

	OnboardingsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "onboardings_completed_total",
			Help:      "Total number of households that completed onboarding",
		},
	)

	// Catalog Metrics
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts by result",
		},
		[]string{"result"}, // "success", "error"
	)

	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_entries",
			Help:      "Number of entries in the active catalog",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimited counts a rejected request.
func RecordRateLimited() {
	RateLimitedTotal.Inc()
}

// RecordStoreOperation records a store operation and whether it failed.
func RecordStoreOperation(backend, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordMalformed counts a stored document that failed to decode.
func RecordMalformed(kind string) {
	MalformedState.WithLabelValues(kind).Inc()
}

// RecordCycle counts a schedule transition. size is the number of kids in
// the new assignment and numKids the household size.
func RecordCycle(size, numKids int) {
	state := "single"
	switch {
	case size == 0:
		state = "unassigned"
	case size == numKids && numKids > 1:
		state = "all"
	}
	AssignmentsCycled.WithLabelValues(state).Inc()
}

// RecordMigration counts each applied migration step.
func RecordMigration(changes []string) {
	for _, c := range changes {
		ProfileMigrations.WithLabelValues(c).Inc()
	}
}

// RecordOnboarding counts a completed onboarding.
func RecordOnboarding() {
	OnboardingsCompleted.Inc()
}

// RecordCatalogReload records a catalog reload and, on success, the new
// entry count.
func RecordCatalogReload(entries int, err error) {
	if err != nil {
		CatalogReloads.WithLabelValues("error").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
	CatalogEntries.Set(float64(entries))
}
