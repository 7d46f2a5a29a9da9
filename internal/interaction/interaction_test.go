// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package interaction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/metrics"
	"github.com/tomtom215/menupick/internal/models"
)

// fakeSender records delivered requests and optionally fails them.
type fakeSender struct {
	mu       sync.Mutex
	requests []models.InteractionRequest
	failFor  models.InteractionType
}

func (f *fakeSender) RecordInteraction(_ context.Context, req models.InteractionRequest) (*models.InteractionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.InteractionType == f.failFor {
		return nil, errors.New("backend unavailable")
	}
	f.requests = append(f.requests, req)
	return &models.InteractionResult{ID: "i"}, nil
}

func (f *fakeSender) sent() []models.InteractionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.InteractionRequest(nil), f.requests...)
}

// capturePublisher keeps published messages instead of delivering them.
type capturePublisher struct {
	mu       sync.Mutex
	messages []*message.Message
	err      error
}

func (c *capturePublisher) Publish(_ string, msgs ...*message.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.messages = append(c.messages, msgs...)
	return nil
}

func (c *capturePublisher) Close() error { return nil }

func (c *capturePublisher) events(t *testing.T) []Event {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	events := make([]Event, 0, len(c.messages))
	for _, msg := range c.messages {
		var ev Event
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		events = append(events, ev)
	}
	return events
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// startPipeline runs a pipeline over a fresh bus until the test ends.
func startPipeline(t *testing.T, sender Sender) (*Recorder, message.Publisher) {
	t.Helper()

	bus := NewPubSub(config.InteractionConfig{BufferSize: 16}, logging.Nop())
	pipeline := NewPipeline(bus, sender, time.Second, logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = pipeline.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = bus.Close()
	})

	select {
	case <-pipeline.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline never subscribed")
	}
	return NewRecorder(bus, sender, "session_1_visit", logging.Nop()), bus
}

func TestRecorder_Strengths(t *testing.T) {
	t.Parallel()

	pub := &capturePublisher{}
	r := NewRecorder(pub, nil, "session_1_abc", logging.Nop())
	ctx := context.Background()

	r.Click(ctx, "m1", nil)
	r.Favorite(ctx, "m1", true)
	r.Favorite(ctx, "m1", false)
	r.RecommendSelect(ctx, "m1", map[string]interface{}{"rank": 1})
	r.Search(ctx, "국밥")
	r.ViewDetail(ctx, "m1", false)
	r.ViewDetail(ctx, "m1", true)
	r.Share(ctx, "m1", "kakao")

	want := []struct {
		typ      models.InteractionType
		strength float64
	}{
		{models.InteractionClick, 0.5},
		{models.InteractionFavorite, 1.0},
		{models.InteractionFavorite, 0.3},
		{models.InteractionRecommendSelect, 0.8},
		{models.InteractionSearch, 0.6},
		{models.InteractionViewDetail, 0.7},
		{models.InteractionViewDetail, 0.6},
		{models.InteractionShare, 0.9},
	}

	events := pub.events(t)
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	ids := make(map[string]bool)
	for i, w := range want {
		ev := events[i]
		if ev.Type != w.typ || ev.Strength != w.strength {
			t.Errorf("event %d = (%s, %v), want (%s, %v)", i, ev.Type, ev.Strength, w.typ, w.strength)
		}
		if ev.SessionID != "session_1_abc" {
			t.Errorf("event %d session = %q", i, ev.SessionID)
		}
		if ev.ID == "" || ids[ev.ID] {
			t.Errorf("event %d id %q missing or reused", i, ev.ID)
		}
		ids[ev.ID] = true
	}
	if events[4].MenuID != "" || events[4].ExtraData["query"] != "국밥" {
		t.Errorf("search event = %+v", events[4])
	}
}

func TestPipeline_FavoriteAddAndRemove(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	r, _ := startPipeline(t, sender)
	ctx := context.Background()

	r.Favorite(ctx, "m1", true)
	r.Favorite(ctx, "m1", false)

	waitFor(t, "two deliveries", func() bool { return len(sender.sent()) == 2 })

	byAction := make(map[string]models.InteractionRequest)
	for _, req := range sender.sent() {
		byAction[req.ExtraData["action"].(string)] = req
	}
	add, remove := byAction["add"], byAction["remove"]
	if add.Strength != 1.0 || remove.Strength != 0.3 {
		t.Errorf("strengths = add %v, remove %v", add.Strength, remove.Strength)
	}
	if add.MenuID != "m1" || remove.MenuID != "m1" || add.SessionID != remove.SessionID || add.SessionID != "session_1_visit" {
		t.Errorf("ids differ: %+v vs %+v", add, remove)
	}
}

func TestPipeline_FailuresAreSwallowed(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{failFor: models.InteractionShare}
	r, _ := startPipeline(t, sender)
	ctx := context.Background()

	failed := metrics.InteractionsTotal.WithLabelValues(string(models.InteractionShare), "failed")
	before := testutil.ToFloat64(failed)

	r.Share(ctx, "m1", "link")
	r.Click(ctx, "m2", nil)

	waitFor(t, "click after failed share", func() bool { return len(sender.sent()) == 1 })
	if got := sender.sent()[0]; got.InteractionType != models.InteractionClick {
		t.Errorf("delivered %s", got.InteractionType)
	}
	waitFor(t, "failure counted", func() bool { return testutil.ToFloat64(failed) > before })
}

func TestPipeline_SkipsUndecodablePayload(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	r, bus := startPipeline(t, sender)

	if err := bus.Publish(Topic, message.NewMessage("bad", []byte("not json"))); err != nil {
		t.Fatalf("publish: %v", err)
	}
	r.Search(context.Background(), "라멘")

	waitFor(t, "search delivery", func() bool { return len(sender.sent()) == 1 })
	if got := sender.sent()[0]; got.InteractionType != models.InteractionSearch {
		t.Errorf("delivered %+v", got)
	}
}

func TestRecorder_PublishFailureNeverSurfaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	NewRecorder(&capturePublisher{err: errors.New("bus closed")}, nil, "s", logging.Nop()).Click(ctx, "m1", nil)
	NewRecorder(nil, nil, "s", logging.Nop()).Click(ctx, "m1", nil)
	NewRecorder(nil, nil, "s", logging.Nop()).RecordNow(ctx, Event{Type: models.InteractionClick, Strength: StrengthClick})
}

func TestRecorder_RecordNow(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{failFor: models.InteractionSearch}
	r := NewRecorder(nil, sender, "session_9_now", logging.Nop())
	ctx := context.Background()

	r.RecordNow(ctx, Event{MenuID: "m1", Type: models.InteractionViewDetail, Strength: StrengthViewDetail})
	r.RecordNow(ctx, Event{Type: models.InteractionSearch, Strength: StrengthSearch})

	sent := sender.sent()
	if len(sent) != 1 || sent[0].SessionID != "session_9_now" || sent[0].MenuID != "m1" {
		t.Errorf("sent = %+v", sent)
	}
}

func TestEvent_RequestSnakeizesExtraData(t *testing.T) {
	t.Parallel()

	ev := Event{
		SessionID: "s",
		Type:      models.InteractionRecommendSelect,
		Strength:  StrengthRecommendSelect,
		ExtraData: map[string]interface{}{"recommendationType": "collaborative", "listPosition": 2},
	}
	req := ev.Request()
	if req.ExtraData["recommendation_type"] != "collaborative" || req.ExtraData["list_position"] != 2 {
		t.Errorf("ExtraData = %v", req.ExtraData)
	}
	if (Event{Type: models.InteractionClick}).Request().ExtraData != nil {
		t.Error("empty extra data should be omitted")
	}
}
