// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package places is a client for the Kakao Local API: nearby venue search by
category or keyword, and conversion between addresses and coordinates.

Every request carries an "Authorization: KakaoAK <key>" header and waits on
a token-bucket limiter sized to the account quota. When the direct call
fails (transport error or non-2xx status), the client retries exactly once
through the configured CORS relay by appending the escaped target URL to
the relay prefix:

	https://corsproxy.io/?https%3A%2F%2Fdapi.kakao.com%2Fv2%2Flocal%2F...

The relay is a fallback path, not a guaranteed channel. Both attempts are
counted in menupick_places_requests_total by route.

Kakao returns coordinates and distances as strings; they are parsed into
numbers here so callers never see the wire form. Geocoding results (both
directions) are cached for places.cache_ttl.

Usage:

	client := places.New(cfg.Places, logger)
	defer client.Close()

	res, err := client.SearchCategory(ctx, places.CategoryQuery{
		Code:   places.CategoryRestaurant,
		Lat:    37.5665,
		Lng:    126.9780,
		Radius: 500,
	})
*/
package places
