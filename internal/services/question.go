// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package services

import (
	"context"
	"sort"

	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/transport"
)

// The trailing slash is part of the backend route.
const (
	pathQuestions = "/api/v1/questions/"
	pathAIAnswer  = "/api/v1/questions/ai-answer"
)

// QuestionService serves the quiz questions and AI answers.
type QuestionService struct {
	base
}

// List returns the quiz questions in display order.
func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	questions, err := transport.Get[[]models.Question](ctx, s.client, pathQuestions, nil)
	if err != nil {
		return nil, s.fail(ctx, err, CodeQuestionList)
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Order < questions[j].Order
	})
	return questions, nil
}

// AIAnswer asks the backend's assistant a free-form question.
func (s *QuestionService) AIAnswer(ctx context.Context, req models.AIAnswerRequest) (*models.AIAnswer, error) {
	if err := s.validate(ctx, &req, CodeAIAnswer); err != nil {
		return nil, err
	}
	answer, err := transport.Post[models.AIAnswer](ctx, s.client, pathAIAnswer, req)
	if err != nil {
		return nil, s.fail(ctx, err, CodeAIAnswer)
	}
	return &answer, nil
}
