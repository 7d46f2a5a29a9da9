// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package transport

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Transport-level error codes.
const (
	CodeNetwork = "NETWORK_ERROR"
	CodeUnknown = "UNKNOWN_ERROR"
	CodeAPI     = "API_ERROR"
)

// User-facing messages for transport-level failures.
const (
	MessageAPIFallback = "요청 처리 중 오류가 발생했습니다."
	MessageNetwork     = "네트워크 연결을 확인해주세요."
	MessageUnknown     = "알 수 없는 오류가 발생했습니다."
)

// APIError is the one error type every backend call fails with.
// StatusCode is 0 when no response was received.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	Details    json.RawMessage
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNetwork reports whether no response was received.
func (e *APIError) IsNetwork() bool {
	return e.Code == CodeNetwork
}

// AsAPIError returns the *APIError in err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Wrap re-tags err for a calling service. An err that already is an
// *APIError is returned unchanged; anything else becomes an *APIError with
// the given code and message wrapping err. Wrap(nil, ...) returns nil.
// Service codes therefore appear only on validation failures and on errors
// that carry no code, never on a server error envelope.
func Wrap(err error, code, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := AsAPIError(err); ok {
		return err
	}
	return &APIError{Code: code, Message: message, Err: err}
}

func networkError(err error) *APIError {
	return &APIError{Code: CodeNetwork, Message: MessageNetwork, Err: err}
}

func unknownError(err error) *APIError {
	return &APIError{Code: CodeUnknown, Message: MessageUnknown, Err: err}
}

// countsAsFailure reports whether err should trip the breaker.
func countsAsFailure(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return true
	}
	return apiErr.Code == CodeNetwork || apiErr.StatusCode >= 500
}
