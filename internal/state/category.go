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
	"github.com/tomtom215/menupick/internal/services"
)

const categoryContainer = "category"

// CategorySnapshot is a copy of the category view state.
type CategorySnapshot struct {
	Loading    bool
	Error      string
	Categories []models.Category
	Selected   string
}

// CategoryState holds the menu categories and the current selection.
type CategoryState struct {
	backend CategoryBackend
	tracker Tracker
	log     zerolog.Logger

	mu         sync.RWMutex
	gen        generation
	loading    bool
	err        string
	categories []models.Category
	selected   string
}

// NewCategoryState creates an empty container.
func NewCategoryState(backend CategoryBackend, tracker Tracker, logger *logging.Logger) *CategoryState {
	return &CategoryState{
		backend:    backend,
		tracker:    tracker,
		log:        logger.For(logging.CategoryState),
		categories: []models.Category{},
	}
}

// Load fetches the categories.
func (s *CategoryState) Load(ctx context.Context) {
	s.mu.Lock()
	reqCtx, n := s.gen.next(ctx)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	categories, err := s.backend.List(reqCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gen.accept(n) {
		discardStale(categoryContainer, s.log, n)
		return
	}
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, services.Message(services.CodeCategoryList))
		logger := logging.Ctx(ctx, s.log)
		logger.Warn().Err(err).Msg("Category load failed")
		return
	}
	s.categories = append([]models.Category{}, categories...)
}

// Select sets the current category and records a click. An empty id
// clears the selection without recording.
func (s *CategoryState) Select(ctx context.Context, categoryID string) {
	s.mu.Lock()
	s.selected = categoryID
	s.mu.Unlock()

	if categoryID == "" {
		return
	}
	s.tracker.Click(ctx, "", map[string]interface{}{"categoryId": categoryID, "source": "category"})
}

// Snapshot returns a copy of the current state.
func (s *CategoryState) Snapshot() CategorySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CategorySnapshot{
		Loading:    s.loading,
		Error:      s.err,
		Categories: append([]models.Category{}, s.categories...),
		Selected:   s.selected,
	}
}
