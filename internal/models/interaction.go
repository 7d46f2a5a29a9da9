// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package models

// InteractionType is the fixed set of user actions the backend learns from.
type InteractionType string

const (
	InteractionClick           InteractionType = "click"
	InteractionFavorite        InteractionType = "favorite"
	InteractionSearch          InteractionType = "search"
	InteractionRecommendSelect InteractionType = "recommend_select"
	InteractionViewDetail      InteractionType = "view_detail"
	InteractionShare           InteractionType = "share"
)

// Valid reports whether t is a known interaction type.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionClick, InteractionFavorite, InteractionSearch,
		InteractionRecommendSelect, InteractionViewDetail, InteractionShare:
		return true
	}
	return false
}

// InteractionRequest is the body of POST /api/v1/recommendations/interaction.
type InteractionRequest struct {
	SessionID       string                 `json:"session_id" validate:"required,sessionid"`
	MenuID          string                 `json:"menu_id,omitempty"`
	InteractionType InteractionType        `json:"interaction_type" validate:"required,oneof=click favorite search recommend_select view_detail share"`
	Strength        float64                `json:"strength" validate:"gt=0,lte=1"`
	ExtraData       map[string]interface{} `json:"extra_data,omitempty"`
}

// InteractionResult is the payload of the interaction endpoint.
type InteractionResult struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}
