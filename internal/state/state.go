// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package state

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menupick/internal/metrics"
	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/places"
	"github.com/tomtom215/menupick/internal/transport"
	"github.com/tomtom215/menupick/internal/validation"
)

// Tracker records user actions. *interaction.Recorder implements it.
type Tracker interface {
	Click(ctx context.Context, menuID string, extra map[string]interface{})
	Favorite(ctx context.Context, menuID string, added bool)
	Search(ctx context.Context, query string)
	RecommendSelect(ctx context.Context, menuID string, extra map[string]interface{})
	ViewDetail(ctx context.Context, menuID string, preview bool)
	Share(ctx context.Context, menuID, channel string)
}

// RecommendationBackend is the subset of services.RecommendationService
// the recommendation container calls.
type RecommendationBackend interface {
	Simple(ctx context.Context, req models.SimpleRecommendationRequest) (*models.RecommendationResponse, error)
	Quiz(ctx context.Context, req models.QuizRecommendationRequest) (*models.RecommendationResponse, error)
	Collaborative(ctx context.Context, req models.CollaborativeRecommendationRequest) (*models.RecommendationBatch, error)
}

// FavoriteBackend is implemented by services.FavoriteService.
type FavoriteBackend interface {
	Add(ctx context.Context, menuID string) (*models.Favorite, error)
	Remove(ctx context.Context, menuID string) (*models.RemoveFavoriteResult, error)
	List(ctx context.Context) (*models.FavoriteList, error)
}

// QuestionBackend is implemented by services.QuestionService.
type QuestionBackend interface {
	List(ctx context.Context) ([]models.Question, error)
	AIAnswer(ctx context.Context, req models.AIAnswerRequest) (*models.AIAnswer, error)
}

// CategoryBackend is implemented by services.CategoryService.
type CategoryBackend interface {
	List(ctx context.Context) ([]models.Category, error)
}

// SavedLookup reports whether a menu is in the user's favorites.
// *FavoritesState implements it.
type SavedLookup interface {
	IsSaved(menuID string) bool
}

// PlaceSearcher is implemented by *places.Client.
type PlaceSearcher interface {
	SearchKeyword(ctx context.Context, q places.KeywordQuery) (*places.SearchResult, error)
}

// generation numbers the requests of one operation. Methods must be called
// with the owning container's lock held.
type generation struct {
	n      uint64
	cancel context.CancelFunc
}

// next starts a request, canceling the one it supersedes.
func (g *generation) next(ctx context.Context) (context.Context, uint64) {
	g.invalidate()
	ctx, g.cancel = context.WithCancel(ctx)
	return ctx, g.n
}

// invalidate makes every outstanding request stale.
func (g *generation) invalidate() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.n++
}

// accept reports whether n is still the latest request and, if so,
// releases its context.
func (g *generation) accept(n uint64) bool {
	if n != g.n {
		return false
	}
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	return true
}

func discardStale(container string, log zerolog.Logger, n uint64) {
	metrics.RecordStaleResponse(container)
	log.Debug().Str("container", container).Uint64("generation", n).Msg("Discarded superseded response")
}

// errorMessage is the text stored for a failed operation.
func errorMessage(err error, fallback string) string {
	if apiErr, ok := transport.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return fallback
}
