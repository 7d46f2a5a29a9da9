// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/metrics"
	"github.com/tomtom215/menupick/internal/models"
)

const (
	// DefaultTimeout bounds a single backend round trip.
	DefaultTimeout = 20 * time.Second

	// maxErrorBodySize caps how much of an error body is kept as details.
	maxErrorBodySize = 64 * 1024

	// maxResponseBodySize caps a successful response body.
	maxResponseBodySize = 8 * 1024 * 1024
)

// TokenSource supplies the bearer token attached to each request.
// An empty token with a nil error means no token is stored.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Config configures a Client.
type Config struct {
	BaseURL string

	// Timeout per round trip. Default: 20s
	Timeout time.Duration

	// Development enables debug logging of every request and response.
	Development bool

	Breaker config.BreakerConfig

	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// ConfigFrom builds a transport Config from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		BaseURL:     cfg.Backend.BaseURL,
		Timeout:     cfg.Backend.Timeout,
		Development: cfg.IsDevelopment(),
		Breaker:     cfg.Breaker,
	}
}

// Client performs enveloped JSON calls against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker[*response]

	log   zerolog.Logger // warnings and breaker events
	trace zerolog.Logger // request/response log, development only
}

type response struct {
	status int
	body   []byte
}

// New creates a Client. tokens may be nil, in which case no Authorization
// header is ever sent.
func New(cfg Config, tokens TokenSource, logger *logging.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	log := logger.For(logging.CategoryAPI)
	trace := zerolog.Nop()
	if cfg.Development {
		trace = log
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     log,
		trace:   trace,
	}
	if cfg.Breaker.Enabled {
		c.breaker = newBreaker(cfg.Breaker, log)
	}
	return c
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET and decodes the envelope's data into T.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return call[T](ctx, c, http.MethodGet, path, query, nil)
}

// Post performs a POST with body encoded as JSON and decodes data into T.
func Post[T any](ctx context.Context, c *Client, path string, body interface{}) (T, error) {
	return call[T](ctx, c, http.MethodPost, path, nil, body)
}

// Delete performs a DELETE and decodes data into T.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	return call[T](ctx, c, http.MethodDelete, path, nil, nil)
}

func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) (T, error) {
	var out T

	data, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return out, err
	}
	if isNull(data) {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		c.trace.Debug().Err(err).Str("path", path).Msg("[API] Decode data failed")
		return out, unknownError(fmt.Errorf("decode %s data: %w", path, err))
	}
	return out, nil
}

// Do performs one round trip and returns the envelope's raw data.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	endpoint := endpointLabel(path)
	trace := logging.Ctx(ctx, c.trace)

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		trace.Debug().Err(err).Str("method", method).Str("path", path).Msg("[API] Build request failed")
		metrics.RecordAPIError(endpoint, CodeUnknown)
		return nil, unknownError(err)
	}

	trace.Debug().Str("method", method).Str("url", req.URL.String()).Msg("[API] Request")

	start := time.Now()
	resp, err := c.execute(func() (*response, error) {
		return c.roundTrip(req)
	})
	duration := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.status
	}
	metrics.RecordAPIRequest(method, endpoint, strconv.Itoa(status), duration)

	if err != nil {
		apiErr, ok := AsAPIError(err)
		if !ok {
			apiErr = unknownError(err)
		}
		metrics.RecordAPIError(endpoint, apiErr.Code)
		trace.Debug().Err(apiErr.Err).Str("code", apiErr.Code).Int("status", apiErr.StatusCode).
			Dur("duration", duration).Str("path", path).Msg("[API] Error")
		return nil, apiErr
	}

	trace.Debug().Int("status", resp.status).Dur("duration", duration).Int("bytes", len(resp.body)).
		Str("path", path).Msg("[API] Response")

	return c.unwrap(resp, endpoint)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// token reads the stored bearer token. A read failure is logged and the
// request goes out unauthenticated.
func (c *Client) token(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		logger := logging.Ctx(ctx, c.log)
		logger.Warn().Err(err).Msg("Failed to read bearer token, sending request without it")
		return ""
	}
	return token
}

// roundTrip sends req. Non-2xx responses come back as an *APIError built
// from the error envelope along with the response.
func (c *Client) roundTrip(req *http.Request) (*response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyForError(resp.Body)
		return &response{status: resp.StatusCode, body: body}, envelopeError(resp.StatusCode, body)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		// Headers arrived but the body did not.
		return &response{status: resp.StatusCode}, networkError(fmt.Errorf("read response body: %w", err))
	}
	return &response{status: resp.StatusCode, body: body}, nil
}

func (c *Client) unwrap(resp *response, endpoint string) (json.RawMessage, error) {
	var env models.Envelope[json.RawMessage]
	if err := json.Unmarshal(resp.body, &env); err != nil {
		metrics.RecordAPIError(endpoint, CodeUnknown)
		return nil, unknownError(fmt.Errorf("decode envelope: %w", err))
	}
	if !env.Success {
		apiErr := fromEnvelope(resp.status, env.Error, resp.body)
		metrics.RecordAPIError(endpoint, apiErr.Code)
		return nil, apiErr
	}
	return env.Data, nil
}

// envelopeError builds the error for a non-2xx response whose body may or
// may not be an envelope.
func envelopeError(status int, body []byte) *APIError {
	var env models.Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return fromEnvelope(status, nil, body)
	}
	return fromEnvelope(status, env.Error, body)
}

func fromEnvelope(status int, envErr *models.EnvelopeError, raw []byte) *APIError {
	apiErr := &APIError{
		Code:       CodeAPI,
		Message:    MessageAPIFallback,
		StatusCode: status,
	}
	if envErr != nil {
		if envErr.Code != "" {
			apiErr.Code = envErr.Code
		}
		if envErr.Message != "" {
			apiErr.Message = envErr.Message
		}
		if !isNull(envErr.Details) {
			apiErr.Details = envErr.Details
		}
	}
	if apiErr.Details == nil && len(raw) > 0 {
		if json.Valid(raw) {
			apiErr.Details = json.RawMessage(raw)
		} else {
			quoted, _ := json.Marshal(string(raw))
			apiErr.Details = quoted
		}
	}
	apiErr.Err = fmt.Errorf("backend returned %s with status %d", apiErr.Code, status)
	return apiErr
}

// readBodyForError reads the response body for error reporting (max 64KB).
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// endpointLabel keeps at most four path segments so ids never become
// metric labels: /api/v1/menus/favorites/m1 -> /api/v1/menus/favorites.
func endpointLabel(path string) string {
	parts := strings.SplitN(strings.Trim(path, "/"), "/", 5)
	if len(parts) > 4 {
		parts = parts[:4]
	}
	return "/" + strings.Join(parts, "/")
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
