// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Client-side instrumentation:
// - Backend API latency and error codes
// - Circuit breaker state
// - Interaction delivery outcomes
// - Places lookups (direct vs proxy) and geocoding cache
// - Login state and stale state-container responses

var (
	// Backend API Metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menupick_api_request_duration_seconds",
			Help:    "Duration of backend API round trips in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menupick_api_requests_total",
			Help: "Total number of backend API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menupick_api_request_errors_total",
			Help: "Total number of failed backend API requests by error code",
		},
		[]string{"endpoint", "code"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Interaction Metrics
	InteractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menupick_interactions_total",
			Help: "Interaction events by type and delivery result",
		},
		[]string{"type", "result"}, // result: "published", "sent", "failed", "dropped"
	)

	// Places Metrics
	PlacesRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menupick_places_requests_total",
			Help: "Kakao Local requests by endpoint, route and result",
		},
		[]string{"endpoint", "route", "result"}, // route: "direct", "proxy"
	)

	PlacesCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menupick_places_cache_hits_total",
			Help: "Geocoding lookups served from cache",
		},
	)

	PlacesCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menupick_places_cache_misses_total",
			Help: "Geocoding lookups that went to the network",
		},
	)

	// Auth Metrics
	AuthLoggedIn = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "menupick_auth_logged_in",
			Help: "1 when the device holds a complete login session, else 0",
		},
	)

	AuthTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menupick_auth_transitions_total",
			Help: "Login state transitions",
		},
		[]string{"from_state", "to_state"},
	)

	// State Container Metrics
	StaleResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menupick_state_stale_responses_total",
			Help: "Responses discarded because a newer request superseded them",
		},
		[]string{"container"},
	)
)

// RecordAPIRequest records one backend round trip.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordAPIError records a failed backend call by its error code.
func RecordAPIError(endpoint, code string) {
	APIRequestErrors.WithLabelValues(endpoint, code).Inc()
}

// RecordInteraction records an interaction delivery outcome.
func RecordInteraction(interactionType, result string) {
	InteractionsTotal.WithLabelValues(interactionType, result).Inc()
}

// RecordPlacesRequest records a Kakao Local request.
func RecordPlacesRequest(endpoint, route string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	PlacesRequests.WithLabelValues(endpoint, route, result).Inc()
}

// RecordPlacesCache records a geocoding cache lookup.
func RecordPlacesCache(hit bool) {
	if hit {
		PlacesCacheHits.Inc()
		return
	}
	PlacesCacheMisses.Inc()
}

// SetLoggedIn updates the login gauge.
func SetLoggedIn(loggedIn bool) {
	if loggedIn {
		AuthLoggedIn.Set(1)
		return
	}
	AuthLoggedIn.Set(0)
}

// RecordAuthTransition records a login state change.
func RecordAuthTransition(from, to string) {
	AuthTransitions.WithLabelValues(from, to).Inc()
}

// RecordStaleResponse records a discarded superseded response.
func RecordStaleResponse(container string) {
	StaleResponses.WithLabelValues(container).Inc()
}
