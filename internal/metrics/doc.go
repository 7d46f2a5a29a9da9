// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package metrics holds the Prometheus instrumentation of the Menupick client.

All collectors are registered with the default registry through promauto. The
client does not serve them itself; an embedding application exposes them with
promhttp.Handler() alongside its own metrics.

# Available Metrics

Backend API:
  - menupick_api_request_duration_seconds{method,endpoint}
  - menupick_api_requests_total{method,endpoint,status_code}
  - menupick_api_request_errors_total{endpoint,code}

Circuit breaker (backend transport):
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Interactions:
  - menupick_interactions_total{type,result}

Places:
  - menupick_places_requests_total{endpoint,route,result}
  - menupick_places_cache_hits_total, menupick_places_cache_misses_total

Auth and state:
  - menupick_auth_logged_in
  - menupick_auth_transitions_total{from_state,to_state}
  - menupick_state_stale_responses_total{container}
*/
package metrics
