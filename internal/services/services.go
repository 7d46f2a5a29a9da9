// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/transport"
	"github.com/tomtom215/menupick/internal/validation"
)

// Domain error codes.
const (
	CodeSimpleRecommendation        = "SIMPLE_RECOMMENDATION_ERROR"
	CodeQuizRecommendation          = "QUIZ_RECOMMENDATION_ERROR"
	CodeCollaborativeRecommendation = "COLLABORATIVE_RECOMMENDATION_ERROR"
	CodeInteractionRecord           = "INTERACTION_RECORD_ERROR"
	CodeCollaborativeUsers          = "COLLABORATIVE_USERS_ERROR"
	CodeFavoriteAdd                 = "FAVORITE_ADD_ERROR"
	CodeFavoriteRemove              = "FAVORITE_REMOVE_ERROR"
	CodeFavoriteList                = "FAVORITE_LIST_ERROR"
	CodeQuestionList                = "QUESTION_LIST_ERROR"
	CodeAIAnswer                    = "AI_ANSWER_ERROR"
	CodeCategoryList                = "CATEGORY_LIST_ERROR"
	CodeKakaoLogin                  = "KAKAO_LOGIN_ERROR"
)

// messages holds the user-facing message per domain code.
var messages = map[string]string{
	CodeSimpleRecommendation:        "추천 메뉴를 불러오는 중 오류가 발생했습니다.",
	CodeQuizRecommendation:          "퀴즈 기반 추천을 불러오는 중 오류가 발생했습니다.",
	CodeCollaborativeRecommendation: "협업 필터링 추천을 불러오는 중 오류가 발생했습니다.",
	CodeInteractionRecord:           "사용자 행동 기록 중 오류가 발생했습니다.",
	CodeCollaborativeUsers:          "유사 사용자 정보를 불러오는 중 오류가 발생했습니다.",
	CodeFavoriteAdd:                 "즐겨찾기 추가 중 오류가 발생했습니다.",
	CodeFavoriteRemove:              "즐겨찾기 삭제 중 오류가 발생했습니다.",
	CodeFavoriteList:                "즐겨찾기 목록을 불러오는 중 오류가 발생했습니다.",
	CodeQuestionList:                "질문 목록을 불러오는 중 오류가 발생했습니다.",
	CodeAIAnswer:                    "AI 답변을 가져오는 중 오류가 발생했습니다.",
	CodeCategoryList:                "카테고리 목록을 불러오는 중 오류가 발생했습니다.",
	CodeKakaoLogin:                  "카카오 로그인 처리 중 오류가 발생했습니다.",
}

// Message returns the user-facing message for a domain code.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return transport.MessageUnknown
}

// Services bundles every domain service over one transport client.
type Services struct {
	Recommendation *RecommendationService
	Favorite       *FavoriteService
	Question       *QuestionService
	Category       *CategoryService
	Auth           *AuthService
}

// New creates all services.
func New(client *transport.Client, logger *logging.Logger) *Services {
	b := base{client: client, log: logger.For(logging.CategoryAPI)}
	return &Services{
		Recommendation: &RecommendationService{base: b},
		Favorite:       &FavoriteService{base: b},
		Question:       &QuestionService{base: b},
		Category:       &CategoryService{base: b},
		Auth:           &AuthService{base: b},
	}
}

type base struct {
	client *transport.Client
	log    zerolog.Logger
}

// fail re-tags err under code and logs it.
func (b base) fail(ctx context.Context, err error, code string) error {
	wrapped := transport.Wrap(err, code, Message(code))
	logger := logging.Ctx(ctx, b.log)
	event := logger.Debug().Err(err).Str("domain_code", code)
	if apiErr, ok := transport.AsAPIError(wrapped); ok {
		event = event.Str("code", apiErr.Code).Int("status", apiErr.StatusCode)
	}
	event.Msg("Service call failed")
	return wrapped
}

// validate returns a domain error for an invalid request, nil otherwise.
func (b base) validate(ctx context.Context, req interface{}, code string) error {
	if verr := validation.ValidateStruct(req); verr != nil {
		return b.fail(ctx, verr, code)
	}
	return nil
}
