// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package interaction

import (
	"context"
	"time"

	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/normalize"
)

// Strength weights per action.
const (
	StrengthClick           = 0.5
	StrengthFavoriteAdd     = 1.0
	StrengthFavoriteRemove  = 0.3
	StrengthRecommendSelect = 0.8
	StrengthSearch          = 0.6
	StrengthViewDetail      = 0.7
	StrengthViewPreview     = 0.6
	StrengthShare           = 0.9
)

// Event is one user action.
type Event struct {
	ID         string                 `json:"id"`
	SessionID  string                 `json:"session_id"`
	MenuID     string                 `json:"menu_id,omitempty"`
	Type       models.InteractionType `json:"interaction_type"`
	Strength   float64                `json:"strength"`
	ExtraData  map[string]interface{} `json:"extra_data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Request converts the event to the backend request body. Extra data keys
// are sent in snake_case.
func (e Event) Request() models.InteractionRequest {
	req := models.InteractionRequest{
		SessionID:       e.SessionID,
		MenuID:          e.MenuID,
		InteractionType: e.Type,
		Strength:        e.Strength,
	}
	if len(e.ExtraData) > 0 {
		if extra, ok := normalize.SnakeizeKeys(e.ExtraData).(map[string]interface{}); ok {
			req.ExtraData = extra
		}
	}
	return req
}

// Sender delivers one interaction to the backend.
// services.RecommendationService satisfies it.
type Sender interface {
	RecordInteraction(ctx context.Context, req models.InteractionRequest) (*models.InteractionResult, error)
}
