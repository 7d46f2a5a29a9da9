// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

// Package session mints the per-visit session identifier.
//
// One identifier is minted per app launch or screen visit and carried by
// every recommendation request and interaction event of that visit, so the
// backend can attribute interactions to a coherent session. It is never
// persisted.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/menupick/internal/logging"
)

// Prefix starts every minted identifier.
const Prefix = "session_"

// randomLength is the length of the random suffix.
const randomLength = 9

// NewID mints an identifier of the form session_{unix millis}_{random}.
func NewID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:randomLength]
	return fmt.Sprintf("%s%d_%s", Prefix, now.UnixMilli(), random)
}

// Visit is one screen visit. Its ID never changes.
type Visit struct {
	id      string
	started time.Time
}

// NewVisit starts a visit with a fresh identifier.
func NewVisit() *Visit {
	now := time.Now()
	return &Visit{id: NewID(now), started: now}
}

// FromID resumes a visit with a known identifier.
func FromID(id string) *Visit {
	return &Visit{id: id, started: time.Now()}
}

// ID returns the visit's session identifier.
func (v *Visit) ID() string {
	return v.id
}

// Started returns when the visit began.
func (v *Visit) Started() time.Time {
	return v.started
}

// Context attaches the session identifier for logging.
func (v *Visit) Context(ctx context.Context) context.Context {
	return logging.ContextWithSessionID(ctx, v.id)
}
