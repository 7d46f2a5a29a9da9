// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package places

import "testing"

func TestParseDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"120", 120, true},
		{" 45 ", 45, true},
		{"12.6", 13, true},
		{"", 0, false},
		{"far", 0, false},
	}
	for _, tt := range tests {
		got := parseDistance(tt.in)
		if (got != nil) != tt.ok || (got != nil && *got != tt.want) {
			t.Errorf("parseDistance(%q) = %v, want %d/%v", tt.in, got, tt.want, tt.ok)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	t.Parallel()

	if v, ok := parseCoordinate("126.9780"); !ok || v != 126.978 {
		t.Errorf("parseCoordinate = %v, %v", v, ok)
	}
	for _, in := range []string{"", "NaN", "Inf", "x"} {
		if _, ok := parseCoordinate(in); ok {
			t.Errorf("parseCoordinate(%q) should fail", in)
		}
	}
}

func TestToAddress_RoadOnly(t *testing.T) {
	t.Parallel()

	addr := toAddress(coordDocument{RoadAddress: &regionAddress{AddressName: "세종대로 110"}})
	if addr.AddressName != "세종대로 110" || addr.RoadAddressName != "세종대로 110" {
		t.Errorf("addr = %+v", addr)
	}
}
