// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package interaction

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/metrics"
	"github.com/tomtom215/menupick/internal/models"
)

// Topic carries interaction events between Recorder and Pipeline.
const Topic = "menupick.interactions"

// DefaultTimeout bounds one delivery.
const DefaultTimeout = 5 * time.Second

// NewPubSub creates the in-process bus shared by Recorder and Pipeline.
func NewPubSub(cfg config.InteractionConfig, logger *logging.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            cfg.BufferSize,
			BlockPublishUntilSubscriberAck: cfg.BlockUntilDelivered,
		},
		watermill.NewSlogLogger(logging.NewSlogLoggerFor(logger, logging.CategoryInteraction)),
	)
}

// Recorder publishes the actions of one visit. All methods are safe for
// concurrent use and never fail.
type Recorder struct {
	publisher message.Publisher
	sender    Sender
	sessionID string
	timeout   time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewRecorder creates a Recorder bound to sessionID. sender is used only by
// RecordNow and may be nil.
func NewRecorder(publisher message.Publisher, sender Sender, sessionID string, logger *logging.Logger) *Recorder {
	return &Recorder{
		publisher: publisher,
		sender:    sender,
		sessionID: sessionID,
		timeout:   DefaultTimeout,
		log:       logger.For(logging.CategoryInteraction),
		now:       time.Now,
	}
}

// SessionID returns the visit's session id.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Click records a tap on a menu or category.
func (r *Recorder) Click(ctx context.Context, menuID string, extra map[string]interface{}) {
	r.Record(ctx, Event{MenuID: menuID, Type: models.InteractionClick, Strength: StrengthClick, ExtraData: extra})
}

// Favorite records saving (added) or unsaving a menu.
func (r *Recorder) Favorite(ctx context.Context, menuID string, added bool) {
	strength := StrengthFavoriteRemove
	action := "remove"
	if added {
		strength = StrengthFavoriteAdd
		action = "add"
	}
	r.Record(ctx, Event{
		MenuID:    menuID,
		Type:      models.InteractionFavorite,
		Strength:  strength,
		ExtraData: map[string]interface{}{"action": action},
	})
}

// Search records a search query.
func (r *Recorder) Search(ctx context.Context, query string) {
	r.Record(ctx, Event{
		Type:      models.InteractionSearch,
		Strength:  StrengthSearch,
		ExtraData: map[string]interface{}{"query": query},
	})
}

// RecommendSelect records picking a recommended menu.
func (r *Recorder) RecommendSelect(ctx context.Context, menuID string, extra map[string]interface{}) {
	r.Record(ctx, Event{MenuID: menuID, Type: models.InteractionRecommendSelect, Strength: StrengthRecommendSelect, ExtraData: extra})
}

// ViewDetail records opening a menu's detail; preview marks a detail
// opened from a list preview.
func (r *Recorder) ViewDetail(ctx context.Context, menuID string, preview bool) {
	strength := StrengthViewDetail
	if preview {
		strength = StrengthViewPreview
	}
	r.Record(ctx, Event{MenuID: menuID, Type: models.InteractionViewDetail, Strength: strength})
}

// Share records sharing a menu through channel (e.g. "kakao", "link").
func (r *Recorder) Share(ctx context.Context, menuID, channel string) {
	var extra map[string]interface{}
	if channel != "" {
		extra = map[string]interface{}{"channel": channel}
	}
	r.Record(ctx, Event{MenuID: menuID, Type: models.InteractionShare, Strength: StrengthShare, ExtraData: extra})
}

// Record publishes ev for asynchronous delivery. Failures are logged.
func (r *Recorder) Record(ctx context.Context, ev Event) {
	ev = r.complete(ev)
	log := logging.Ctx(ctx, r.log).With().Str("interaction_type", string(ev.Type)).Str("menu_id", ev.MenuID).Logger()

	if r.publisher == nil {
		metrics.RecordInteraction(string(ev.Type), "dropped")
		log.Debug().Msg("No interaction publisher, event dropped")
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		metrics.RecordInteraction(string(ev.Type), "dropped")
		log.Warn().Err(err).Msg("Failed to encode interaction event")
		return
	}

	msg := message.NewMessage(ev.ID, payload)
	msg.Metadata.Set("session_id", ev.SessionID)
	msg.Metadata.Set("correlation_id", logging.CorrelationIDFromContext(ctx))

	if err := r.publisher.Publish(Topic, msg); err != nil {
		metrics.RecordInteraction(string(ev.Type), "dropped")
		log.Warn().Err(err).Msg("Failed to publish interaction event")
		return
	}
	metrics.RecordInteraction(string(ev.Type), "published")
	log.Debug().Float64("strength", ev.Strength).Msg("Interaction published")
}

// RecordNow delivers ev synchronously, bounded by the recorder timeout.
// Failures are logged and swallowed like asynchronous ones.
func (r *Recorder) RecordNow(ctx context.Context, ev Event) {
	ev = r.complete(ev)
	if r.sender == nil {
		metrics.RecordInteraction(string(ev.Type), "dropped")
		return
	}
	deliver(ctx, r.sender, ev, r.timeout, r.log)
}

func (r *Recorder) complete(ev Event) Event {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.SessionID == "" {
		ev.SessionID = r.sessionID
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = r.now().UTC()
	}
	return ev
}

// deliver sends one event and reports whether it was accepted.
func deliver(ctx context.Context, sender Sender, ev Event, timeout time.Duration, log zerolog.Logger) bool {
	ctx, cancel := context.WithTimeout(logging.ContextWithSessionID(ctx, ev.SessionID), timeout)
	defer cancel()

	if _, err := sender.RecordInteraction(ctx, ev.Request()); err != nil {
		metrics.RecordInteraction(string(ev.Type), "failed")
		logger := logging.Ctx(ctx, log)
		logger.Warn().Err(err).
			Str("event_id", ev.ID).
			Str("interaction_type", string(ev.Type)).
			Msg("Failed to record interaction")
		return false
	}
	metrics.RecordInteraction(string(ev.Type), "sent")
	return true
}
