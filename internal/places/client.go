// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package places

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/menupick/internal/cache"
	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/metrics"
	"github.com/tomtom215/menupick/internal/validation"
)

const (
	pathCategory      = "/v2/local/search/category.json"
	pathKeyword       = "/v2/local/search/keyword.json"
	pathAddress       = "/v2/local/search/address.json"
	pathCoordToAddr   = "/v2/local/geo/coord2address.json"
	defaultTimeout    = 10 * time.Second
	defaultAuthScheme = "KakaoAK"
	maxErrorBody      = 4 << 10
)

// Route labels for metrics.
const (
	RouteDirect = "direct"
	RouteProxy  = "proxy"
)

var (
	// ErrNoAPIKey is returned when no REST API key is configured.
	ErrNoAPIKey = errors.New("kakao rest api key not configured")

	// ErrNoResult is returned when geocoding finds nothing.
	ErrNoResult = errors.New("no matching location")
)

// StatusError is a non-2xx answer from Kakao or the relay.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("kakao local returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("kakao local returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls the Kakao Local API. It is safe for concurrent use.
type Client struct {
	http       *http.Client
	baseURL    string
	proxyURL   string
	authHeader string
	hasKey     bool
	limiter    *rate.Limiter
	geocodes   *cache.Cache[Coordinates]
	addresses  *cache.Cache[Address]
	log        zerolog.Logger
}

// New creates a Client from the places settings. A zero rate limit
// disables limiting.
func New(cfg config.PlacesConfig, logger *logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	scheme := cfg.AuthScheme
	if scheme == "" {
		scheme = defaultAuthScheme
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		http:       &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		proxyURL:   cfg.ProxyURL,
		authHeader: scheme + " " + cfg.APIKey,
		hasKey:     cfg.APIKey != "",
		limiter:    rate.NewLimiter(limit, burst),
		geocodes:   cache.New[Coordinates](cfg.CacheTTL),
		addresses:  cache.New[Address](cfg.CacheTTL),
		log:        logger.For(logging.CategoryPlaces),
	}
}

// Close stops the geocoding caches' background sweep.
func (c *Client) Close() {
	c.geocodes.Close()
	c.addresses.Close()
}

// SearchCategory lists venues of q.Code around (q.Lat, q.Lng).
func (c *Client) SearchCategory(ctx context.Context, q CategoryQuery) (*SearchResult, error) {
	if verr := validation.ValidateStruct(q); verr != nil {
		return nil, verr
	}

	params := url.Values{}
	params.Set("category_group_code", q.Code)
	params.Set("x", formatCoordinate(q.Lng))
	params.Set("y", formatCoordinate(q.Lat))
	setPaging(params, q.Radius, q.Page, q.Size, q.Sort)

	var resp placeResponse
	if err := c.get(ctx, "category", pathCategory, params, &resp); err != nil {
		return nil, err
	}
	return toSearchResult(&resp), nil
}

// SearchKeyword lists venues matching q.Query.
func (c *Client) SearchKeyword(ctx context.Context, q KeywordQuery) (*SearchResult, error) {
	if verr := validation.ValidateStruct(q); verr != nil {
		return nil, verr
	}

	params := url.Values{}
	params.Set("query", q.Query)
	if q.CategoryCode != "" {
		params.Set("category_group_code", q.CategoryCode)
	}
	if q.HasCenter {
		params.Set("x", formatCoordinate(q.Lng))
		params.Set("y", formatCoordinate(q.Lat))
		setPaging(params, q.Radius, q.Page, q.Size, q.Sort)
	} else {
		setPaging(params, 0, q.Page, q.Size, q.Sort)
	}

	var resp placeResponse
	if err := c.get(ctx, "keyword", pathKeyword, params, &resp); err != nil {
		return nil, err
	}
	return toSearchResult(&resp), nil
}

// AddressToCoord geocodes an address to the first matching point.
func (c *Client) AddressToCoord(ctx context.Context, address string) (Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Coordinates{}, fmt.Errorf("address is empty")
	}

	key := "address:" + address
	if coords, ok := c.geocodes.Get(key); ok {
		metrics.RecordPlacesCache(true)
		return coords, nil
	}
	metrics.RecordPlacesCache(false)

	params := url.Values{}
	params.Set("query", address)

	var resp addressResponse
	if err := c.get(ctx, "address", pathAddress, params, &resp); err != nil {
		return Coordinates{}, err
	}

	for _, doc := range resp.Documents {
		lng, okX := parseCoordinate(doc.X)
		lat, okY := parseCoordinate(doc.Y)
		if okX && okY {
			coords := Coordinates{Lat: lat, Lng: lng}
			c.geocodes.Set(key, coords)
			return coords, nil
		}
	}
	return Coordinates{}, ErrNoResult
}

// CoordToAddress reverse-geocodes a point.
func (c *Client) CoordToAddress(ctx context.Context, lat, lng float64) (Address, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Address{}, fmt.Errorf("coordinates out of range: %v,%v", lat, lng)
	}

	key := cache.GenerateKey("coord2address", [2]string{
		strconv.FormatFloat(lat, 'f', 6, 64),
		strconv.FormatFloat(lng, 'f', 6, 64),
	})
	if addr, ok := c.addresses.Get(key); ok {
		metrics.RecordPlacesCache(true)
		return addr, nil
	}
	metrics.RecordPlacesCache(false)

	params := url.Values{}
	params.Set("x", formatCoordinate(lng))
	params.Set("y", formatCoordinate(lat))

	var resp coordResponse
	if err := c.get(ctx, "coord2address", pathCoordToAddr, params, &resp); err != nil {
		return Address{}, err
	}
	if len(resp.Documents) == 0 {
		return Address{}, ErrNoResult
	}

	addr := toAddress(resp.Documents[0])
	c.addresses.Set(key, addr)
	return addr, nil
}

func setPaging(params url.Values, radius, page, size int, sort string) {
	if radius > 0 {
		params.Set("radius", strconv.Itoa(radius))
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		params.Set("size", strconv.Itoa(size))
	}
	if sort != "" {
		params.Set("sort", sort)
	}
}

// get calls the endpoint directly and, if that fails, once more through the
// relay. The relay response is decoded into out on success.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	if !c.hasKey {
		return ErrNoAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("places rate limit: %w", err)
	}

	target := c.baseURL + path + "?" + params.Encode()
	directErr := c.fetch(ctx, target, out)
	metrics.RecordPlacesRequest(endpoint, RouteDirect, directErr == nil)
	if directErr == nil {
		return nil
	}
	if ctx.Err() != nil || c.proxyURL == "" {
		return fmt.Errorf("places %s: %w", endpoint, directErr)
	}

	c.log.Warn().Err(directErr).Str("endpoint", endpoint).Msg("Direct Kakao Local call failed, retrying via relay")

	proxyErr := c.fetch(ctx, c.proxyURL+url.QueryEscape(target), out)
	metrics.RecordPlacesRequest(endpoint, RouteProxy, proxyErr == nil)
	if proxyErr != nil {
		c.log.Error().Err(proxyErr).Str("endpoint", endpoint).Msg("Kakao Local relay call failed")
		return fmt.Errorf("places %s: %w", endpoint, errors.Join(directErr, proxyErr))
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, target string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query kakao local: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode kakao local response: %w", err)
	}
	return nil
}
