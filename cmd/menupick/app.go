// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/menupick/internal/auth"
	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/interaction"
	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/places"
	"github.com/tomtom215/menupick/internal/services"
	"github.com/tomtom215/menupick/internal/session"
	"github.com/tomtom215/menupick/internal/storage"
	"github.com/tomtom215/menupick/internal/supervisor"
	"github.com/tomtom215/menupick/internal/transport"
)

// readyTimeout bounds the wait for the interaction pipeline to subscribe.
const readyTimeout = 5 * time.Second

// app is the fully wired client for one command.
type app struct {
	cfg      *config.Config
	logger   *logging.Logger
	log      zerolog.Logger
	visit    *session.Visit
	store    storage.Store
	client   *transport.Client
	services *services.Services
	auth     *auth.Manager
	places   *places.Client
	bus      *gochannel.GoChannel
	recorder *interaction.Recorder
	pipeline *interaction.Pipeline

	stopTree context.CancelFunc
	treeDone <-chan error
}

func newApp(cfg *config.Config, logger *logging.Logger, sessionID string) (*app, error) {
	store, err := storage.Open(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	visit := session.NewVisit()
	if sessionID != "" {
		visit = session.FromID(sessionID)
	}

	client := transport.New(transport.ConfigFrom(cfg), storage.BearerToken{Store: store}, logger)
	svc := services.New(client, logger)
	bus := interaction.NewPubSub(cfg.Interaction, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		log:      logger.Base(),
		visit:    visit,
		store:    store,
		client:   client,
		services: svc,
		auth:     auth.NewManager(store, svc.Auth, cfg.Kakao, logger),
		places:   places.New(cfg.Places, logger),
		bus:      bus,
		recorder: interaction.NewRecorder(bus, svc.Recommendation, visit.ID(), logger),
		pipeline: interaction.NewPipeline(bus, svc.Recommendation, cfg.Interaction.Timeout, logger),
	}, nil
}

// start runs the background services and waits for the interaction
// pipeline to subscribe. The login poller runs when configured or when the
// command follows login changes.
func (a *app) start(ctx context.Context, watchLogin bool) {
	tree, err := supervisor.NewTree(a.logger, supervisor.DefaultTreeConfig())
	if err != nil {
		a.log.Warn().Err(err).Msg("Supervisor tree unavailable, interactions will be dropped")
		return
	}

	tree.AddClientService(a.pipeline)
	if a.cfg.Auth.PollFallback || watchLogin {
		tree.AddAuthService(auth.NewPoller(a.auth, a.cfg.Auth.PollInterval, a.logger))
	}

	treeCtx, cancel := context.WithCancel(ctx)
	a.stopTree = cancel
	a.treeDone = tree.ServeBackground(treeCtx)

	select {
	case <-a.pipeline.Ready():
	case <-time.After(readyTimeout):
		a.log.Warn().Msg("Interaction pipeline not ready, interactions may be dropped")
	case <-ctx.Done():
	}
}

func (a *app) close() {
	if a.stopTree != nil {
		a.stopTree()
		if err := <-a.treeDone; err != nil && !errors.Is(err, context.Canceled) {
			a.log.Debug().Err(err).Msg("Supervisor tree stopped")
		}
	}
	if err := a.bus.Close(); err != nil {
		a.log.Warn().Err(err).Msg("Error closing interaction bus")
	}
	a.places.Close()
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("Error closing storage")
	}
}
