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
	"github.com/tomtom215/menupick/internal/session"
)

const favoritesContainer = "favorites"

// FavoritesSnapshot is a copy of the favorites view state.
type FavoritesSnapshot struct {
	Loading   bool
	Error     string
	Favorites []models.Favorite
}

// FavoritesState holds the user's saved menus.
type FavoritesState struct {
	backend FavoriteBackend
	tracker Tracker
	visit   *session.Visit
	log     zerolog.Logger

	mu        sync.RWMutex
	gen       generation
	loading   bool
	err       string
	favorites []models.Favorite
	saved     map[string]bool
}

// NewFavoritesState creates an empty container.
func NewFavoritesState(backend FavoriteBackend, tracker Tracker, visit *session.Visit, logger *logging.Logger) *FavoritesState {
	return &FavoritesState{
		backend:   backend,
		tracker:   tracker,
		visit:     visit,
		log:       logger.For(logging.CategoryState),
		favorites: []models.Favorite{},
		saved:     make(map[string]bool),
	}
}

// Load fetches the favorites list.
func (s *FavoritesState) Load(ctx context.Context) {
	ctx = s.visit.Context(ctx)

	s.mu.Lock()
	reqCtx, n := s.gen.next(ctx)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	list, err := s.backend.List(reqCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gen.accept(n) {
		discardStale(favoritesContainer, s.log, n)
		return
	}
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, services.Message(services.CodeFavoriteList))
		logger := logging.Ctx(ctx, s.log)
		logger.Warn().Err(err).Msg("Favorites load failed")
		return
	}

	s.favorites = append([]models.Favorite{}, list.Favorites...)
	s.saved = make(map[string]bool, len(s.favorites))
	for _, f := range s.favorites {
		s.saved[f.MenuID] = true
	}
}

// IsSaved reports whether menuID is in the favorites.
func (s *FavoritesState) IsSaved(menuID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved[menuID]
}

// Toggle adds menuID if it is not saved and removes it otherwise, and
// returns whether it is saved afterwards. A successful toggle supersedes any
// list load in flight.
func (s *FavoritesState) Toggle(ctx context.Context, menuID string) bool {
	ctx = s.visit.Context(ctx)
	wasSaved := s.IsSaved(menuID)

	var (
		added *models.Favorite
		err   error
	)
	if wasSaved {
		_, err = s.backend.Remove(ctx, menuID)
	} else {
		added, err = s.backend.Add(ctx, menuID)
	}

	s.mu.Lock()
	if err != nil {
		code := services.CodeFavoriteAdd
		if wasSaved {
			code = services.CodeFavoriteRemove
		}
		s.err = errorMessage(err, services.Message(code))
		s.mu.Unlock()
		logger := logging.Ctx(ctx, s.log)
		logger.Warn().Err(err).Str("menu_id", menuID).Msg("Favorite toggle failed")
		return wasSaved
	}

	s.gen.invalidate()
	s.loading = false
	s.err = ""
	if wasSaved {
		delete(s.saved, menuID)
		kept := s.favorites[:0:0]
		for _, f := range s.favorites {
			if f.MenuID != menuID {
				kept = append(kept, f)
			}
		}
		s.favorites = kept
	} else {
		s.saved[menuID] = true
		fav := models.Favorite{MenuID: menuID}
		if added != nil {
			fav = *added
			if fav.MenuID == "" {
				fav.MenuID = menuID
			}
		}
		s.favorites = append(s.favorites, fav)
	}
	s.mu.Unlock()

	s.tracker.Favorite(ctx, menuID, !wasSaved)
	return !wasSaved
}

// Snapshot returns a copy of the current state.
func (s *FavoritesState) Snapshot() FavoritesSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FavoritesSnapshot{
		Loading:   s.loading,
		Error:     s.err,
		Favorites: append([]models.Favorite{}, s.favorites...),
	}
}
