// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

// Package validation checks request structs before the domain services send them.
//
// Validation runs client-side only to catch programming errors early (a
// missing session identifier, an unknown time slot); the backend stays the
// authority on what it accepts. A failed check never reaches the network and
// is surfaced by the calling service under its domain error code.
//
// # Custom Tags
//
//   - timeslot: one of breakfast, lunch, dinner
//   - sessionid: opaque, without whitespace, at most 128 bytes
//
// Built-in tags used by the request types include required, min, max, gt,
// latitude, longitude and oneof.
package validation
