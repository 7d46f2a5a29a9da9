// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"menupick.yaml",
	"menupick.yml",
	"config.yaml",
	"config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Environment: EnvironmentDevelopment,
		Backend: BackendConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 20 * time.Second,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		Kakao: KakaoConfig{
			RedirectURI: "http://localhost:3000/auth/kakao/callback",
			AuthURL:     "https://kauth.kakao.com/oauth/authorize",
			TokenURL:    "https://kauth.kakao.com/oauth/token",
		},
		Places: PlacesConfig{
			BaseURL:    "https://dapi.kakao.com",
			AuthScheme: "KakaoAK",
			ProxyURL:   "https://corsproxy.io/?",
			RateLimit:  10,
			Burst:      5,
			CacheTTL:   10 * time.Minute,
			Timeout:    10 * time.Second,
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
			Path:   ".menupick/storage",
		},
		Auth: AuthConfig{
			PollInterval: 5 * time.Second,
			PollFallback: false,
		},
		Interaction: InteractionConfig{
			BufferSize: 64,
			Timeout:    5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load is an alias for LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"logging.categories",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// The API_BASE_URL and KAKAO_* names match the variables the web build used.
var envMappings = map[string]string{
	"environment": "environment",

	// Backend
	"api_base_url": "backend.base_url",
	"api_timeout":  "backend.timeout",

	// Circuit breaker
	"breaker_enabled":       "breaker.enabled",
	"breaker_max_requests":  "breaker.max_requests",
	"breaker_interval":      "breaker.interval",
	"breaker_timeout":       "breaker.timeout",
	"breaker_min_requests":  "breaker.min_requests",
	"breaker_failure_ratio": "breaker.failure_ratio",

	// Kakao OAuth
	"kakao_client_id":     "kakao.client_id",
	"kakao_client_secret": "kakao.client_secret",
	"kakao_redirect_uri":  "kakao.redirect_uri",
	"kakao_auth_url":      "kakao.auth_url",
	"kakao_token_url":     "kakao.token_url",

	// Kakao Local
	"kakao_rest_api_key": "places.api_key",
	"places_base_url":    "places.base_url",
	"places_auth_scheme": "places.auth_scheme",
	"places_proxy_url":   "places.proxy_url",
	"places_rate_limit":  "places.rate_limit",
	"places_burst":       "places.burst",
	"places_cache_ttl":   "places.cache_ttl",
	"places_timeout":     "places.timeout",

	// Storage
	"storage_driver": "storage.driver",
	"storage_path":   "storage.path",

	// Auth
	"auth_poll_interval": "auth.poll_interval",
	"auth_poll_fallback": "auth.poll_fallback",

	// Interaction
	"interaction_buffer_size":           "interaction.buffer_size",
	"interaction_timeout":               "interaction.timeout",
	"interaction_block_until_delivered": "interaction.block_until_delivered",

	// Logging
	"log_level":      "logging.level",
	"log_format":     "logging.format",
	"log_caller":     "logging.caller",
	"log_categories": "logging.categories",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - API_BASE_URL -> backend.base_url
//   - KAKAO_CLIENT_ID -> kakao.client_id
//   - KAKAO_REST_API_KEY -> places.api_key
//   - LOG_CATEGORIES -> logging.categories
//
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
