// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations/simple", "200"))

	RecordAPIRequest("POST", "/api/v1/recommendations/simple", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations/simple", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

func TestRecordAPIError(t *testing.T) {
	before := testutil.ToFloat64(APIRequestErrors.WithLabelValues("/api/v1/categories", "NETWORK_ERROR"))
	RecordAPIError("/api/v1/categories", "NETWORK_ERROR")
	after := testutil.ToFloat64(APIRequestErrors.WithLabelValues("/api/v1/categories", "NETWORK_ERROR"))
	if after != before+1 {
		t.Errorf("APIRequestErrors = %v, want %v", after, before+1)
	}
}

func TestRecordInteraction(t *testing.T) {
	tests := []struct {
		interactionType string
		result          string
	}{
		{"click", "published"},
		{"favorite", "sent"},
		{"search", "failed"},
		{"share", "dropped"},
	}

	for _, tt := range tests {
		t.Run(tt.interactionType+"/"+tt.result, func(t *testing.T) {
			c := InteractionsTotal.WithLabelValues(tt.interactionType, tt.result)
			before := testutil.ToFloat64(c)
			RecordInteraction(tt.interactionType, tt.result)
			if got := testutil.ToFloat64(c); got != before+1 {
				t.Errorf("InteractionsTotal = %v, want %v", got, before+1)
			}
		})
	}
}

func TestRecordPlacesRequest(t *testing.T) {
	ok := PlacesRequests.WithLabelValues("keyword", "proxy", "success")
	fail := PlacesRequests.WithLabelValues("keyword", "direct", "failure")
	okBefore, failBefore := testutil.ToFloat64(ok), testutil.ToFloat64(fail)

	RecordPlacesRequest("keyword", "direct", false)
	RecordPlacesRequest("keyword", "proxy", true)

	if got := testutil.ToFloat64(ok); got != okBefore+1 {
		t.Errorf("proxy success = %v, want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(fail); got != failBefore+1 {
		t.Errorf("direct failure = %v, want %v", got, failBefore+1)
	}
}

func TestRecordPlacesCache(t *testing.T) {
	hits, misses := testutil.ToFloat64(PlacesCacheHits), testutil.ToFloat64(PlacesCacheMisses)

	RecordPlacesCache(true)
	RecordPlacesCache(false)
	RecordPlacesCache(false)

	if got := testutil.ToFloat64(PlacesCacheHits); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(PlacesCacheMisses); got != misses+2 {
		t.Errorf("misses = %v, want %v", got, misses+2)
	}
}

func TestSetLoggedIn(t *testing.T) {
	SetLoggedIn(true)
	if got := testutil.ToFloat64(AuthLoggedIn); got != 1 {
		t.Errorf("AuthLoggedIn = %v, want 1", got)
	}
	SetLoggedIn(false)
	if got := testutil.ToFloat64(AuthLoggedIn); got != 0 {
		t.Errorf("AuthLoggedIn = %v, want 0", got)
	}
}

func TestRecordStaleResponse(t *testing.T) {
	c := StaleResponses.WithLabelValues("recommendation")
	before := testutil.ToFloat64(c)
	RecordStaleResponse("recommendation")
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("StaleResponses = %v, want %v", got, before+1)
	}
}
