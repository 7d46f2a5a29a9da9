// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package auth

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menupick/internal/logging"
)

// DefaultPollInterval is the fallback re-check period.
const DefaultPollInterval = 5 * time.Second

// Poller re-checks the login state on a fixed interval. It implements
// suture.Service.
type Poller struct {
	manager  *Manager
	interval time.Duration
	log      zerolog.Logger
}

// NewPoller creates a Poller. A non-positive interval uses DefaultPollInterval.
func NewPoller(manager *Manager, interval time.Duration, logger *logging.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		manager:  manager,
		interval: interval,
		log:      logger.For(logging.CategoryAuth),
	}
}

// Serve checks once immediately, then on every tick until ctx is canceled.
// Check failures are logged by the manager and retried on the next tick.
func (p *Poller) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Debug().Dur("interval", p.interval).Msg("Login state poller started")
	_, _ = p.manager.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_, _ = p.manager.Refresh(ctx)
		}
	}
}

func (p *Poller) String() string {
	return "login-poller"
}
