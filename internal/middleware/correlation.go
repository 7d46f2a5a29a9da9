// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tomtom215/menupick/internal/logging"
)

// HeaderRequestID carries the correlation id in both directions.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLength caps caller-supplied ids.
const maxRequestIDLength = 64

// CorrelationID reuses the caller's X-Request-ID when present, otherwise
// mints a UUID, and makes it the logging correlation id of the request.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)

		ctx := logging.ContextWithCorrelationID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
