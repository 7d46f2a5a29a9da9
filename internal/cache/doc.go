// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

// Package cache provides a small generic TTL cache.
//
// The places client uses it to remember address and coordinate conversions,
// which are stable and count against the Kakao Local quota. Recommendation
// results are never cached; each request is one round trip.
package cache
