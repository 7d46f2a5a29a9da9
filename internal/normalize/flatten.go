// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package normalize

import "github.com/tomtom215/menupick/internal/models"

// Flatten lifts the menu fields of item to the top level.
func Flatten(item models.RecommendationItem) models.Recommendation {
	m := item.Menu
	return models.Recommendation{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Rating:      m.Rating,
		ImageURL:    m.ImageURL,
		Price:       m.Price,
		Calories:    m.Calories,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fat:         m.Fat,
		Score:       item.Score,
		Reason:      item.Reason,
	}
}

// RecommendationItems flattens simple and quiz results.
func RecommendationItems(items []models.RecommendationItem) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(items))
	for _, item := range items {
		out = append(out, Flatten(item))
	}
	return out
}

// CollaborativeItems flattens collaborative results and fills in the
// similarity score and similar-user count recovered from each reason.
func CollaborativeItems(items []models.RecommendationItem) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(items))
	for _, item := range items {
		rec := Flatten(item)
		rec.SimilarityScore, rec.SimilarUsersCount = ParseCollaborativeReason(item.Reason, item.Score)
		out = append(out, rec)
	}
	return out
}

// ABTest converts the wire A/B info to its display form, camelizing the
// weight names. It returns nil for nil input.
func ABTest(info *models.ABTestInfo) *models.ABTestDisplay {
	if info == nil {
		return nil
	}

	display := &models.ABTestDisplay{
		Group:              info.Group,
		RecommendationType: info.RecommendationType,
	}
	if len(info.Weights) > 0 {
		display.Weights = make(map[string]float64, len(info.Weights))
		for k, w := range info.Weights {
			display.Weights[SnakeToCamel(k)] = w
		}
	}
	return display
}

// Batch normalizes a full recommendation response. A missing
// recommendation_type on a collaborative response is filled in.
func Batch(resp *models.RecommendationResponse, collaborative bool) models.RecommendationBatch {
	if resp == nil {
		return models.RecommendationBatch{Recommendations: []models.Recommendation{}}
	}

	batch := models.RecommendationBatch{
		SessionID:          resp.SessionID,
		TotalCount:         resp.TotalCount,
		ABTest:             ABTest(resp.ABTestInfo),
		RecommendationType: resp.RecommendationType,
	}
	if collaborative {
		batch.Recommendations = CollaborativeItems(resp.Recommendations)
		if batch.RecommendationType == "" {
			batch.RecommendationType = models.RecommendationTypeCollaborative
		}
	} else {
		batch.Recommendations = RecommendationItems(resp.Recommendations)
	}
	if batch.ABTest != nil && batch.ABTest.RecommendationType == "" {
		batch.ABTest.RecommendationType = batch.RecommendationType
	}
	return batch
}
