// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package interaction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/metrics"
)

// Pipeline delivers published events to the backend. It implements
// suture.Service.
type Pipeline struct {
	subscriber message.Subscriber
	sender     Sender
	timeout    time.Duration
	log        zerolog.Logger

	ready     chan struct{}
	readyOnce sync.Once
}

// NewPipeline creates a Pipeline. A non-positive timeout uses DefaultTimeout.
func NewPipeline(subscriber message.Subscriber, sender Sender, timeout time.Duration, logger *logging.Logger) *Pipeline {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pipeline{
		subscriber: subscriber,
		sender:     sender,
		timeout:    timeout,
		log:        logger.For(logging.CategoryInteraction),
		ready:      make(chan struct{}),
	}
}

// Ready is closed once the pipeline has subscribed.
func (p *Pipeline) Ready() <-chan struct{} {
	return p.ready
}

// Serve consumes events until ctx is canceled.
func (p *Pipeline) Serve(ctx context.Context) error {
	messages, err := p.subscriber.Subscribe(ctx, Topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", Topic, err)
	}
	p.readyOnce.Do(func() { close(p.ready) })
	p.log.Debug().Str("topic", Topic).Msg("Interaction pipeline subscribed")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				// The bus was closed; restarting cannot resubscribe.
				return suture.ErrDoNotRestart
			}
			p.process(ctx, msg)
		}
	}
}

// process always acks: a nack would redeliver forever and delivery is
// best effort.
func (p *Pipeline) process(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var ev Event
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		metrics.RecordInteraction("unknown", "failed")
		p.log.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Discarding undecodable interaction event")
		return
	}

	if cid := msg.Metadata.Get("correlation_id"); cid != "" {
		ctx = logging.ContextWithCorrelationID(ctx, cid)
	}
	deliver(ctx, p.sender, ev, p.timeout, p.log)
}

func (p *Pipeline) String() string {
	return "interaction-pipeline"
}
