// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package middleware provides the HTTP middleware used by the local OAuth
redirect listener.

Key Components:

  - CorrelationID: takes X-Request-ID from the caller or mints one, echoes
    it in the response and stores it as the logging correlation id
  - AccessLog: logs method, path, status and duration of every request

Usage Example:

	r := chi.NewRouter()
	r.Use(middleware.CorrelationID, middleware.AccessLog(log))
	r.Get("/auth/kakao/callback", handler)

The middleware is stdlib http.Handler shaped so it composes with chi and
with plain net/http servers alike.
*/
package middleware
