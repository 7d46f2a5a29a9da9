// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package places

import (
	"math"
	"strconv"
	"strings"
)

// parseCoordinate parses a Kakao coordinate string. Empty or malformed
// values yield 0 and false.
func parseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseDistance parses a distance in meters. Kakao sends "" when the
// request had no center point.
func parseDistance(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if d, err := strconv.Atoi(s); err == nil {
		return &d
	}
	if f, ok := parseCoordinate(s); ok {
		d := int(math.Round(f))
		return &d
	}
	return nil
}

func toPlace(doc placeDocument) Place {
	lng, _ := parseCoordinate(doc.X)
	lat, _ := parseCoordinate(doc.Y)
	return Place{
		ID:                doc.ID,
		Name:              doc.PlaceName,
		CategoryName:      doc.CategoryName,
		CategoryGroupCode: doc.CategoryGroupCode,
		Phone:             doc.Phone,
		Address:           doc.AddressName,
		RoadAddress:       doc.RoadAddressName,
		URL:               doc.PlaceURL,
		Lat:               lat,
		Lng:               lng,
		Distance:          parseDistance(doc.Distance),
	}
}

func toSearchResult(resp *placeResponse) *SearchResult {
	out := &SearchResult{
		Places:        make([]Place, 0, len(resp.Documents)),
		TotalCount:    resp.Meta.TotalCount,
		PageableCount: resp.Meta.PageableCount,
		IsEnd:         resp.Meta.IsEnd,
	}
	for _, doc := range resp.Documents {
		out.Places = append(out.Places, toPlace(doc))
	}
	return out
}

func toAddress(doc coordDocument) Address {
	var out Address
	if doc.Address != nil {
		out.AddressName = doc.Address.AddressName
		out.Region1 = doc.Address.Region1
		out.Region2 = doc.Address.Region2
		out.Region3 = doc.Address.Region3
	}
	if doc.RoadAddress != nil {
		out.RoadAddressName = doc.RoadAddress.AddressName
		if out.AddressName == "" {
			out.AddressName = doc.RoadAddress.AddressName
		}
	}
	return out
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
