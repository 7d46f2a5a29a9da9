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
	"github.com/tomtom215/menupick/internal/places"
	"github.com/tomtom215/menupick/internal/validation"
)

const (
	nearbyContainer = "nearby"

	// DefaultNearbyRadius in meters.
	DefaultNearbyRadius = 1000

	messageNearbyFailed = "주변 음식점을 불러오지 못했습니다."
)

// NearbySnapshot is a copy of the nearby-restaurant view state.
type NearbySnapshot struct {
	Loading bool
	Error   string
	Keyword string
	Center  places.Coordinates
	Places  []places.Place
	IsEnd   bool
}

// NearbyState holds restaurant search results around a point.
type NearbyState struct {
	searcher PlaceSearcher
	tracker  Tracker
	radius   int
	log      zerolog.Logger

	mu      sync.RWMutex
	gen     generation
	loading bool
	err     string
	keyword string
	center  places.Coordinates
	places  []places.Place
	isEnd   bool
}

// NewNearbyState creates an empty container. A non-positive radius uses
// DefaultNearbyRadius.
func NewNearbyState(searcher PlaceSearcher, tracker Tracker, radius int, logger *logging.Logger) *NearbyState {
	if radius <= 0 {
		radius = DefaultNearbyRadius
	}
	return &NearbyState{
		searcher: searcher,
		tracker:  tracker,
		radius:   radius,
		log:      logger.For(logging.CategoryState),
		places:   []places.Place{},
	}
}

// Search looks up restaurants matching keyword around (lat, lng), nearest
// first, and records a search interaction.
func (s *NearbyState) Search(ctx context.Context, keyword string, lat, lng float64) {
	q := places.KeywordQuery{
		Query:        keyword,
		CategoryCode: places.CategoryRestaurant,
		HasCenter:    true,
		Lat:          lat,
		Lng:          lng,
		Radius:       s.radius,
		Sort:         places.SortDistance,
	}

	s.mu.Lock()
	if verr := validation.ValidateStruct(q); verr != nil {
		s.gen.invalidate()
		s.loading = false
		s.err = errorMessage(verr, messageNearbyFailed)
		s.mu.Unlock()
		return
	}
	reqCtx, n := s.gen.next(ctx)
	s.loading = true
	s.err = ""
	s.keyword = keyword
	s.center = places.Coordinates{Lat: lat, Lng: lng}
	s.mu.Unlock()

	s.tracker.Search(ctx, keyword)
	res, err := s.searcher.SearchKeyword(reqCtx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gen.accept(n) {
		discardStale(nearbyContainer, s.log, n)
		return
	}
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, messageNearbyFailed)
		logger := logging.Ctx(ctx, s.log)
		logger.Warn().Err(err).Str("keyword", keyword).Msg("Nearby search failed")
		return
	}
	s.places = append([]places.Place{}, res.Places...)
	s.isEnd = res.IsEnd
}

// Snapshot returns a copy of the current state.
func (s *NearbyState) Snapshot() NearbySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NearbySnapshot{
		Loading: s.loading,
		Error:   s.err,
		Keyword: s.keyword,
		Center:  s.center,
		Places:  append([]places.Place{}, s.places...),
		IsEnd:   s.isEnd,
	}
}
