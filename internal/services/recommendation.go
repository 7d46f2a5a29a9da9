// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/normalize"
	"github.com/tomtom215/menupick/internal/transport"
)

// Recommendation endpoints.
const (
	pathSimple             = "/api/v1/recommendations/simple"
	pathQuiz               = "/api/v1/recommendations/quiz"
	pathCollaborative      = "/api/v1/recommendations/collaborative"
	pathInteraction        = "/api/v1/recommendations/interaction"
	pathCollaborativeUsers = "/api/v1/recommendations/collaborative-users"
)

// RecommendationService calls the recommendation endpoints.
type RecommendationService struct {
	base
}

// Simple returns recommendations for a time slot, optionally within a category.
func (s *RecommendationService) Simple(ctx context.Context, req models.SimpleRecommendationRequest) (*models.RecommendationResponse, error) {
	if err := s.validate(ctx, &req, CodeSimpleRecommendation); err != nil {
		return nil, err
	}
	resp, err := transport.Post[models.RecommendationResponse](ctx, s.client, pathSimple, req)
	if err != nil {
		return nil, s.fail(ctx, err, CodeSimpleRecommendation)
	}
	return &resp, nil
}

// Quiz returns recommendations for a set of quiz answers.
func (s *RecommendationService) Quiz(ctx context.Context, req models.QuizRecommendationRequest) (*models.RecommendationResponse, error) {
	if err := s.validate(ctx, &req, CodeQuizRecommendation); err != nil {
		return nil, err
	}
	resp, err := transport.Post[models.RecommendationResponse](ctx, s.client, pathQuiz, req)
	if err != nil {
		return nil, s.fail(ctx, err, CodeQuizRecommendation)
	}
	return &resp, nil
}

// Collaborative returns collaborative-filtering recommendations, normalized:
// menus flattened and similarity data recovered from each reason.
func (s *RecommendationService) Collaborative(ctx context.Context, req models.CollaborativeRecommendationRequest) (*models.RecommendationBatch, error) {
	if err := s.validate(ctx, &req, CodeCollaborativeRecommendation); err != nil {
		return nil, err
	}
	resp, err := transport.Post[models.RecommendationResponse](ctx, s.client, pathCollaborative, req)
	if err != nil {
		return nil, s.fail(ctx, err, CodeCollaborativeRecommendation)
	}
	batch := normalize.Batch(&resp, true)
	return &batch, nil
}

// RecordInteraction sends one interaction event.
func (s *RecommendationService) RecordInteraction(ctx context.Context, req models.InteractionRequest) (*models.InteractionResult, error) {
	if err := s.validate(ctx, &req, CodeInteractionRecord); err != nil {
		return nil, err
	}
	resp, err := transport.Post[models.InteractionResult](ctx, s.client, pathInteraction, req)
	if err != nil {
		return nil, s.fail(ctx, err, CodeInteractionRecord)
	}
	return &resp, nil
}

type collaborativeUsersQuery struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

// CollaborativeUsers lists users similar to the session's user.
// A zero limit leaves the page size to the backend.
func (s *RecommendationService) CollaborativeUsers(ctx context.Context, sessionID string, limit int) (*models.CollaborativeUsersResponse, error) {
	q := collaborativeUsersQuery{SessionID: sessionID, Limit: limit}
	if err := s.validate(ctx, &q, CodeCollaborativeUsers); err != nil {
		return nil, err
	}

	query := url.Values{"session_id": {sessionID}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	resp, err := transport.Get[models.CollaborativeUsersResponse](ctx, s.client, pathCollaborativeUsers, query)
	if err != nil {
		return nil, s.fail(ctx, err, CodeCollaborativeUsers)
	}
	return &resp, nil
}
