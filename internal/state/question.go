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

const questionContainer = "question"

// QuestionSnapshot is a copy of the quiz and AI-answer view state.
type QuestionSnapshot struct {
	Loading   bool
	Asking    bool
	Error     string
	Questions []models.Question
	Answer    *models.AIAnswer
}

// QuestionState holds the quiz questions and the last AI answer.
type QuestionState struct {
	backend QuestionBackend
	visit   *session.Visit
	log     zerolog.Logger

	mu        sync.RWMutex
	listGen   generation
	askGen    generation
	loading   bool
	asking    bool
	err       string
	questions []models.Question
	answer    *models.AIAnswer
}

// NewQuestionState creates an empty container.
func NewQuestionState(backend QuestionBackend, visit *session.Visit, logger *logging.Logger) *QuestionState {
	return &QuestionState{
		backend:   backend,
		visit:     visit,
		log:       logger.For(logging.CategoryState),
		questions: []models.Question{},
	}
}

// Load fetches the quiz questions.
func (s *QuestionState) Load(ctx context.Context) {
	ctx = s.visit.Context(ctx)

	s.mu.Lock()
	reqCtx, n := s.listGen.next(ctx)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	questions, err := s.backend.List(reqCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.listGen.accept(n) {
		discardStale(questionContainer, s.log, n)
		return
	}
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, services.Message(services.CodeQuestionList))
		logger := logging.Ctx(ctx, s.log)
		logger.Warn().Err(err).Msg("Question load failed")
		return
	}
	s.questions = append([]models.Question{}, questions...)
}

// Ask sends a free-form question to the AI answer endpoint. hint is passed
// as the request context and may be empty.
func (s *QuestionState) Ask(ctx context.Context, question, hint string) {
	ctx = s.visit.Context(ctx)
	req := models.AIAnswerRequest{Question: question, SessionID: s.visit.ID(), Context: hint}

	s.mu.Lock()
	reqCtx, n := s.askGen.next(ctx)
	s.asking = true
	s.err = ""
	s.mu.Unlock()

	answer, err := s.backend.AIAnswer(reqCtx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.askGen.accept(n) {
		discardStale(questionContainer, s.log, n)
		return
	}
	s.asking = false
	if err != nil {
		s.err = errorMessage(err, services.Message(services.CodeAIAnswer))
		logger := logging.Ctx(ctx, s.log)
		logger.Warn().Err(err).Msg("AI answer failed")
		return
	}
	s.answer = answer
}

// Snapshot returns a copy of the current state.
func (s *QuestionState) Snapshot() QuestionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := QuestionSnapshot{
		Loading:   s.loading,
		Asking:    s.asking,
		Error:     s.err,
		Questions: append([]models.Question{}, s.questions...),
	}
	if s.answer != nil {
		answer := *s.answer
		snap.Answer = &answer
	}
	return snap
}
