// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package models

// Question is a quiz question.
type Question struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	Options  []QuestionOption `json:"options,omitempty"`
	Order    int              `json:"order,omitempty"`
	Category string           `json:"category,omitempty"`
}

// QuestionOption is one selectable answer.
type QuestionOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value,omitempty"`
}

// AIAnswerRequest is the body of POST /api/v1/questions/ai-answer.
type AIAnswerRequest struct {
	Question  string `json:"question" validate:"required,max=500"`
	SessionID string `json:"session_id" validate:"required,sessionid"`
	Context   string `json:"context,omitempty"`
}

// AIAnswer is the payload of the ai-answer endpoint.
type AIAnswer struct {
	Answer           string `json:"answer"`
	RecommendedMenus []Menu `json:"recommended_menus,omitempty"`
}
