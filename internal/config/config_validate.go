// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateEnvironment(); err != nil {
		return err
	}
	if err := c.validateBackend(); err != nil {
		return err
	}
	if err := c.validateBreaker(); err != nil {
		return err
	}
	if err := c.validatePlaces(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateAuth(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateEnvironment() error {
	switch c.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
}

// validateBackend validates the backend transport settings
func (c *Config) validateBackend() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if err := validateHTTPURL(c.Backend.BaseURL, "API_BASE_URL"); err != nil {
		return err
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %v", c.Backend.Timeout)
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Breaker.FailureRatio)
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validatePlaces validates the Kakao Local client settings.
// An empty API key is allowed; the places client reports it on first use.
func (c *Config) validatePlaces() error {
	if err := validateHTTPURL(c.Places.BaseURL, "PLACES_BASE_URL"); err != nil {
		return err
	}
	if c.Places.ProxyURL != "" && !strings.HasPrefix(c.Places.ProxyURL, "http") {
		return fmt.Errorf("PLACES_PROXY_URL must be an http(s) prefix, got %q", c.Places.ProxyURL)
	}
	if c.Places.RateLimit < 0 {
		return fmt.Errorf("PLACES_RATE_LIMIT must not be negative")
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Driver {
	case StorageDriverMemory:
		return nil
	case StorageDriverBadger:
		if c.Storage.Path == "" {
			return fmt.Errorf("STORAGE_PATH is required when STORAGE_DRIVER=badger")
		}
		return nil
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: memory, badger")
	}
}

func (c *Config) validateAuth() error {
	if c.Auth.PollFallback && c.Auth.PollInterval <= 0 {
		return fmt.Errorf("AUTH_POLL_INTERVAL must be positive when AUTH_POLL_FALLBACK=true")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validLogCategories defines the allowed logging categories
var validLogCategories = map[string]bool{
	"all":         true,
	"api":         true,
	"auth":        true,
	"interaction": true,
	"places":      true,
	"state":       true,
	"storage":     true,
	"supervisor":  true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	for _, cat := range c.Logging.Categories {
		if !validLogCategories[strings.ToLower(strings.TrimSpace(cat))] {
			return fmt.Errorf("LOG_CATEGORIES contains unknown category %q", cat)
		}
	}
	return nil
}
