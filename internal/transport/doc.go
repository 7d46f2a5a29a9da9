// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package transport is the single choke point for every backend call.

A Client carries the backend base URL, a fixed round-trip timeout and JSON
headers. Before each request it reads the bearer token from an injected
TokenSource and, when one is present, sends it as "Authorization: Bearer
<token>".

Every backend response is an envelope:

	{"success": true, "data": {...}}
	{"success": false, "error": {"code": "...", "message": "...", "details": ...}}

The generic helpers Get, Post and Delete unwrap the envelope and return only
data. Every failure is returned as exactly one *APIError:

  - an error envelope or non-2xx status carries the server code (API_ERROR
    when absent), the server message (a fixed Korean fallback when absent),
    the HTTP status and the raw details
  - a request that got no response carries NETWORK_ERROR and status 0
  - anything else, such as an encoding failure, carries UNKNOWN_ERROR

Domain services re-tag failures with Wrap, which leaves an existing
*APIError untouched so codes are never wrapped twice.

A circuit breaker (sony/gobreaker) guards the backend. Only NETWORK_ERROR
and 5xx responses count against it; while open, calls fail fast with
NETWORK_ERROR. There are no retries, no backoff and no caching: each call is
exactly one round trip.

In development mode every request, response and error is logged at debug
level under the "api" category.
*/
package transport
