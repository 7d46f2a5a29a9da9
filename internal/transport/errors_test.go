// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package transport

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	if Wrap(nil, "X_ERROR", "x") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	network := networkError(errors.New("dial tcp: refused"))
	wrapped := Wrap(fmt.Errorf("simple: %w", network), "SIMPLE_RECOMMENDATION_ERROR", "추천 실패")
	apiErr, ok := AsAPIError(wrapped)
	if !ok || apiErr.Code != CodeNetwork {
		t.Errorf("typed error must pass through, got %v", wrapped)
	}

	cause := errors.New("time_slot is required")
	wrapped = Wrap(cause, "SIMPLE_RECOMMENDATION_ERROR", "추천 실패")
	apiErr, ok = AsAPIError(wrapped)
	if !ok {
		t.Fatalf("expected *APIError, got %T", wrapped)
	}
	if apiErr.Code != "SIMPLE_RECOMMENDATION_ERROR" || apiErr.Message != "추천 실패" || apiErr.StatusCode != 0 {
		t.Errorf("unexpected error %+v", apiErr)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("cause should stay in the chain")
	}
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *APIError
		want string
	}{
		{&APIError{Code: "MENU_NOT_FOUND", Message: "없음", StatusCode: 404}, "MENU_NOT_FOUND (status 404): 없음"},
		{networkError(nil), "NETWORK_ERROR: " + MessageNetwork},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
	if !networkError(nil).IsNetwork() || unknownError(nil).IsNetwork() {
		t.Error("IsNetwork mismatch")
	}
}

func TestCountsAsFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"network", networkError(nil), true},
		{"5xx", &APIError{Code: CodeAPI, StatusCode: 503}, true},
		{"4xx", &APIError{Code: "BAD", StatusCode: 400}, false},
		{"failed envelope on 200", &APIError{Code: "BAD", StatusCode: 200}, false},
		{"untyped", errors.New("boom"), true},
	}
	for _, tt := range tests {
		if got := countsAsFailure(tt.err); got != tt.want {
			t.Errorf("%s: countsAsFailure = %v, want %v", tt.name, got, tt.want)
		}
	}
}
