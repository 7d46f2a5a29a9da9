// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package transport

import (
	"errors"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/metrics"
)

const breakerName = "menupick-api"

// newBreaker builds the backend circuit breaker.
// Opens when the failure ratio within Interval reaches FailureRatio over at
// least MinRequests; allows MaxRequests trial calls after Timeout.
func newBreaker(cfg config.BreakerConfig, log zerolog.Logger) *gobreaker.CircuitBreaker[*response] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				log.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// 4xx and error envelopes are answers, not outages.
		IsSuccessful: func(err error) bool {
			return err == nil || !countsAsFailure(err)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			log.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
}

// execute runs fn through the breaker, mapping rejections to NETWORK_ERROR.
func (c *Client) execute(fn func() (*response, error)) (*response, error) {
	if c.breaker == nil {
		return fn()
	}

	resp, err := c.breaker.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)
		return resp, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		c.log.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, networkError(err)
	}

	result := "success"
	if countsAsFailure(err) {
		result = "failure"
	}
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, result).Inc()
	counts := c.breaker.Counts()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(float64(counts.ConsecutiveFailures))

	return resp, err
}

// BreakerState returns the breaker state as closed, half-open or open;
// "disabled" when the breaker is off.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return stateToString(c.breaker.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
