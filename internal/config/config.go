// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package config

import "time"

// Environment names.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Storage driver names.
const (
	StorageDriverMemory = "memory"
	StorageDriverBadger = "badger"
)

// Config holds all client configuration.
type Config struct {
	// Environment is development or production. Development enables
	// request/response logging in the transport.
	Environment string `koanf:"environment"`

	Backend     BackendConfig     `koanf:"backend"`
	Breaker     BreakerConfig     `koanf:"breaker"`
	Kakao       KakaoConfig       `koanf:"kakao"`
	Places      PlacesConfig      `koanf:"places"`
	Storage     StorageConfig     `koanf:"storage"`
	Auth        AuthConfig        `koanf:"auth"`
	Interaction InteractionConfig `koanf:"interaction"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// BackendConfig configures the recommendation backend transport.
type BackendConfig struct {
	// BaseURL is the backend origin, e.g. https://api.menupick.kr
	BaseURL string `koanf:"base_url"`

	// Timeout bounds a single round trip.
	// Default: 20s
	Timeout time.Duration `koanf:"timeout"`
}

// BreakerConfig configures the circuit breaker around the backend.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests allowed through in half-open state.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the closed-state window after which counts reset.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `koanf:"timeout"`

	// MinRequests before the failure ratio is evaluated.
	MinRequests uint32 `koanf:"min_requests"`

	// FailureRatio at or above which the breaker opens.
	FailureRatio float64 `koanf:"failure_ratio"`
}

// KakaoConfig configures the Kakao OAuth authorization-code flow.
type KakaoConfig struct {
	ClientID string `koanf:"client_id"`

	// ClientSecret is shipped with the client. This is a known risk kept
	// for compatibility with the existing Kakao app registration.
	ClientSecret string `koanf:"client_secret"`

	RedirectURI string `koanf:"redirect_uri"`
	AuthURL     string `koanf:"auth_url"`
	TokenURL    string `koanf:"token_url"`
}

// PlacesConfig configures the Kakao Local places/geocoding client.
type PlacesConfig struct {
	BaseURL    string `koanf:"base_url"`
	APIKey     string `koanf:"api_key"`
	AuthScheme string `koanf:"auth_scheme"`

	// ProxyURL is the CORS relay prefix used once after a direct failure.
	// Empty disables the fallback.
	ProxyURL string `koanf:"proxy_url"`

	// RateLimit is requests per second against the quota; Burst the bucket size.
	RateLimit float64 `koanf:"rate_limit"`
	Burst     int     `koanf:"burst"`

	CacheTTL time.Duration `koanf:"cache_ttl"`
	Timeout  time.Duration `koanf:"timeout"`
}

// StorageConfig selects the device storage driver.
type StorageConfig struct {
	// Driver is memory or badger.
	Driver string `koanf:"driver"`

	// Path is the BadgerDB directory (badger driver only).
	Path string `koanf:"path"`
}

// AuthConfig configures login-state tracking.
type AuthConfig struct {
	// PollInterval of the fallback login-state poll.
	// Default: 5s
	PollInterval time.Duration `koanf:"poll_interval"`

	// PollFallback enables the poll when no cross-window notification exists.
	PollFallback bool `koanf:"poll_fallback"`
}

// InteractionConfig configures interaction delivery.
type InteractionConfig struct {
	// BufferSize of the in-process event channel.
	BufferSize int64 `koanf:"buffer_size"`

	// Timeout for each interaction POST.
	Timeout time.Duration `koanf:"timeout"`

	// BlockUntilDelivered makes Publish wait until the pipeline has
	// delivered the event. Short-lived processes set it so nothing is
	// lost at exit.
	BlockUntilDelivered bool `koanf:"block_until_delivered"`
}

// LoggingConfig configures the logging component.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file:line in each event.
	Caller bool `koanf:"caller"`

	// Categories enabled; empty enables all.
	Categories []string `koanf:"categories"`
}

// IsDevelopment reports whether the client runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}
