// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package models

import "github.com/goccy/go-json"

// Envelope is the wrapper every backend response arrives in.
//
// Example successful response:
//
//	{"success": true, "data": {"recommendations": [], "session_id": "abc", "total_count": 0}}
//
// Example error response:
//
//	{"success": false, "error": {"code": "INVALID_TIME_SLOT", "message": "...", "details": {...}}}
type Envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Error   *EnvelopeError `json:"error,omitempty"`
}

// EnvelopeError is the error member of a failed envelope.
// Details is kept raw; its shape differs per endpoint.
type EnvelopeError struct {
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}
