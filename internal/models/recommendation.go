// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package models

import "time"

// TimeSlot is the meal slot a simple recommendation is made for.
type TimeSlot string

const (
	TimeSlotBreakfast TimeSlot = "breakfast"
	TimeSlotLunch     TimeSlot = "lunch"
	TimeSlotDinner    TimeSlot = "dinner"
)

// Valid reports whether s is one of the three accepted slots.
func (s TimeSlot) Valid() bool {
	switch s {
	case TimeSlotBreakfast, TimeSlotLunch, TimeSlotDinner:
		return true
	}
	return false
}

// TimeSlotAt returns the slot preselected for a wall-clock time:
// breakfast from 05:00, lunch from 11:00, dinner from 17:00 through the night.
func TimeSlotAt(t time.Time) TimeSlot {
	switch h := t.Hour(); {
	case h >= 5 && h < 11:
		return TimeSlotBreakfast
	case h >= 11 && h < 17:
		return TimeSlotLunch
	default:
		return TimeSlotDinner
	}
}

// RecommendationType labels which engine produced a batch.
type RecommendationType string

const (
	RecommendationTypeSimple        RecommendationType = "simple"
	RecommendationTypeQuiz          RecommendationType = "quiz"
	RecommendationTypeCollaborative RecommendationType = "collaborative"
	RecommendationTypeHybrid        RecommendationType = "hybrid"
)

// SimpleRecommendationRequest is the body of POST /api/v1/recommendations/simple.
type SimpleRecommendationRequest struct {
	TimeSlot   TimeSlot `json:"time_slot" validate:"required,timeslot"`
	SessionID  string   `json:"session_id" validate:"required,sessionid"`
	CategoryID *string  `json:"category_id,omitempty"`
}

// QuizAnswer is one answered quiz question.
type QuizAnswer struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

// QuizRecommendationRequest is the body of POST /api/v1/recommendations/quiz.
type QuizRecommendationRequest struct {
	SessionID string       `json:"session_id" validate:"required,sessionid"`
	Answers   []QuizAnswer `json:"answers" validate:"min=1,dive"`
	TimeSlot  TimeSlot     `json:"time_slot,omitempty" validate:"omitempty,timeslot"`
}

// CollaborativeRecommendationRequest is the body of POST /api/v1/recommendations/collaborative.
type CollaborativeRecommendationRequest struct {
	SessionID string   `json:"session_id" validate:"required,sessionid"`
	Limit     int      `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
	TimeSlot  TimeSlot `json:"time_slot,omitempty" validate:"omitempty,timeslot"`
}

// RecommendationItem is a (menu, score, reason) triple on the wire.
type RecommendationItem struct {
	Menu   Menu    `json:"menu"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// RecommendationResponse is the payload of the simple, quiz and collaborative endpoints.
type RecommendationResponse struct {
	Recommendations    []RecommendationItem `json:"recommendations"`
	SessionID          string               `json:"session_id"`
	TotalCount         int                  `json:"total_count"`
	ABTestInfo         *ABTestInfo          `json:"ab_test_info,omitempty"`
	RecommendationType RecommendationType   `json:"recommendation_type,omitempty"`
}

// ABTestInfo describes the A/B bucket a batch was produced under.
type ABTestInfo struct {
	Group              string             `json:"group"`
	Weights            map[string]float64 `json:"weights,omitempty"`
	RecommendationType RecommendationType `json:"recommendation_type,omitempty"`
}

// ABTestDisplay is the camelCase display form of ABTestInfo.
type ABTestDisplay struct {
	Group              string             `json:"group"`
	Weights            map[string]float64 `json:"weights,omitempty"`
	RecommendationType RecommendationType `json:"recommendationType,omitempty"`
}

// Recommendation is a flattened, display-ready recommendation: the menu's
// fields lifted to the top level with camelCase names.
// SimilarityScore and SimilarUsersCount are set for collaborative results only.
type Recommendation struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Category          string   `json:"category,omitempty"`
	Rating            float64  `json:"rating,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	Price             int      `json:"price,omitempty"`
	Calories          *float64 `json:"calories,omitempty"`
	Protein           *float64 `json:"protein,omitempty"`
	Carbs             *float64 `json:"carbs,omitempty"`
	Fat               *float64 `json:"fat,omitempty"`
	Score             float64  `json:"score"`
	Reason            string   `json:"reason"`
	SimilarityScore   float64  `json:"similarityScore,omitempty"`
	SimilarUsersCount int      `json:"similarUsersCount,omitempty"`
	IsSaved           bool     `json:"isSaved"`
}

// RecommendationBatch is a normalized response: the flattened list plus the
// batch metadata.
type RecommendationBatch struct {
	Recommendations    []Recommendation   `json:"recommendations"`
	SessionID          string             `json:"sessionId"`
	TotalCount         int                `json:"totalCount"`
	ABTest             *ABTestDisplay     `json:"abTestInfo,omitempty"`
	RecommendationType RecommendationType `json:"recommendationType,omitempty"`
}

// SimilarUser is one entry of the collaborative-users listing.
type SimilarUser struct {
	UserID             string  `json:"user_id"`
	SimilarityScore    float64 `json:"similarity_score"`
	CommonInteractions int     `json:"common_interactions,omitempty"`
}

// CollaborativeUsersResponse is the payload of GET /api/v1/recommendations/collaborative-users.
type CollaborativeUsersResponse struct {
	SimilarUsers []SimilarUser `json:"similar_users"`
	TotalCount   int           `json:"total_count"`
	SessionID    string        `json:"session_id,omitempty"`
}
