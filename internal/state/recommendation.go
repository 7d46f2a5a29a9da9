// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package state

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/normalize"
	"github.com/tomtom215/menupick/internal/session"
	"github.com/tomtom215/menupick/internal/transport"
)

const recommendationContainer = "recommendation"

// Mode is the recommendation engine the screen is showing.
type Mode string

const (
	ModeSimple        Mode = "simple"
	ModeQuiz          Mode = "quiz"
	ModeCollaborative Mode = "collaborative"
)

// RecommendationSnapshot is a copy of the recommendation view state.
type RecommendationSnapshot struct {
	Mode     Mode
	Loading  bool
	Error    string
	Batch    models.RecommendationBatch
	Selected *models.Recommendation
}

// RecommendationState holds the current recommendation batch.
type RecommendationState struct {
	backend RecommendationBackend
	tracker Tracker
	visit   *session.Visit
	log     zerolog.Logger
	saved   SavedLookup

	mu       sync.RWMutex
	gen      generation
	mode     Mode
	loading  bool
	err      string
	batch    models.RecommendationBatch
	selected *models.Recommendation
}

// NewRecommendationState creates an empty container in simple mode.
func NewRecommendationState(backend RecommendationBackend, tracker Tracker, visit *session.Visit, logger *logging.Logger) *RecommendationState {
	return &RecommendationState{
		backend: backend,
		tracker: tracker,
		visit:   visit,
		log:     logger.For(logging.CategoryState),
		mode:    ModeSimple,
	}
}

// UseSaved sets the favorites lookup that drives each recommendation's
// IsSaved flag. A nil lookup leaves every flag false.
func (s *RecommendationState) UseSaved(lookup SavedLookup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = lookup
	s.markSavedLocked(s.batch.Recommendations)
}

func (s *RecommendationState) markSavedLocked(recs []models.Recommendation) {
	for i := range recs {
		recs[i].IsSaved = s.saved != nil && s.saved.IsSaved(recs[i].ID)
	}
}

// SetMode switches engine. Switching discards the current results and any
// request in flight.
func (s *RecommendationState) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == mode {
		return
	}
	s.gen.invalidate()
	s.mode = mode
	s.resetLocked()
}

func (s *RecommendationState) resetLocked() {
	s.loading = false
	s.err = ""
	s.batch = models.RecommendationBatch{Recommendations: []models.Recommendation{}}
	s.selected = nil
}

// LoadSimple loads a time-slot recommendation. An empty categoryID means
// all categories.
func (s *RecommendationState) LoadSimple(ctx context.Context, slot models.TimeSlot, categoryID string) {
	req := models.SimpleRecommendationRequest{TimeSlot: slot, SessionID: s.visit.ID()}
	if categoryID != "" {
		req.CategoryID = &categoryID
	}
	s.load(ctx, ModeSimple, func(ctx context.Context) (models.RecommendationBatch, error) {
		resp, err := s.backend.Simple(ctx, req)
		if err != nil {
			return models.RecommendationBatch{}, err
		}
		return normalize.Batch(resp, false), nil
	})
}

// LoadQuiz loads a recommendation from quiz answers.
func (s *RecommendationState) LoadQuiz(ctx context.Context, answers []models.QuizAnswer, slot models.TimeSlot) {
	req := models.QuizRecommendationRequest{SessionID: s.visit.ID(), Answers: answers, TimeSlot: slot}
	s.load(ctx, ModeQuiz, func(ctx context.Context) (models.RecommendationBatch, error) {
		resp, err := s.backend.Quiz(ctx, req)
		if err != nil {
			return models.RecommendationBatch{}, err
		}
		return normalize.Batch(resp, false), nil
	})
}

// LoadCollaborative loads collaborative-filtering recommendations.
func (s *RecommendationState) LoadCollaborative(ctx context.Context, limit int) {
	req := models.CollaborativeRecommendationRequest{SessionID: s.visit.ID(), Limit: limit}
	s.load(ctx, ModeCollaborative, func(ctx context.Context) (models.RecommendationBatch, error) {
		batch, err := s.backend.Collaborative(ctx, req)
		if err != nil {
			return models.RecommendationBatch{}, err
		}
		return *batch, nil
	})
}

func (s *RecommendationState) load(ctx context.Context, mode Mode, fetch func(context.Context) (models.RecommendationBatch, error)) {
	ctx = s.visit.Context(ctx)

	s.mu.Lock()
	if s.mode != mode {
		s.mode = mode
		s.resetLocked()
	}
	reqCtx, n := s.gen.next(ctx)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	batch, err := fetch(reqCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gen.accept(n) {
		discardStale(recommendationContainer, s.log, n)
		return
	}
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, transport.MessageUnknown)
		logger := logging.Ctx(ctx, s.log)
		logger.Warn().Err(err).Str("mode", string(mode)).Msg("Recommendation load failed")
		return
	}
	if batch.Recommendations == nil {
		batch.Recommendations = []models.Recommendation{}
	}
	s.markSavedLocked(batch.Recommendations)
	s.batch = batch
	s.selected = nil
}

// Select marks rec as chosen and records a recommend_select interaction.
func (s *RecommendationState) Select(ctx context.Context, rec models.Recommendation) {
	s.mu.Lock()
	selected := rec
	s.selected = &selected
	recType := s.batch.RecommendationType
	rank := -1
	for i := range s.batch.Recommendations {
		if s.batch.Recommendations[i].ID == rec.ID {
			rank = i + 1
			break
		}
	}
	s.mu.Unlock()

	extra := map[string]interface{}{
		"score":  rec.Score,
		"reason": rec.Reason,
	}
	if recType != "" {
		extra["recommendationType"] = string(recType)
	}
	if rank > 0 {
		extra["rank"] = rank
	}
	s.tracker.RecommendSelect(s.visit.Context(ctx), rec.ID, extra)
}

// ViewDetail records that the detail view of menuID was opened.
func (s *RecommendationState) ViewDetail(ctx context.Context, menuID string) {
	s.tracker.ViewDetail(s.visit.Context(ctx), menuID, false)
}

// Share records that menuID was shared over channel.
func (s *RecommendationState) Share(ctx context.Context, menuID, channel string) {
	s.tracker.Share(s.visit.Context(ctx), menuID, channel)
}

// Snapshot returns a copy of the current state.
func (s *RecommendationState) Snapshot() RecommendationSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := RecommendationSnapshot{
		Mode:    s.mode,
		Loading: s.loading,
		Error:   s.err,
		Batch:   s.batch,
	}
	snap.Batch.Recommendations = append([]models.Recommendation{}, s.batch.Recommendations...)
	s.markSavedLocked(snap.Batch.Recommendations)
	if s.selected != nil {
		sel := *s.selected
		if s.saved != nil {
			sel.IsSaved = s.saved.IsSaved(sel.ID)
		}
		snap.Selected = &sel
	}
	return snap
}
