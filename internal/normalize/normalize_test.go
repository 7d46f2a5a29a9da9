// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package normalize

import (
	"reflect"
	"testing"

	"github.com/tomtom215/menupick/internal/models"
)

func TestParseCollaborativeReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		reason    string
		score     float64
		wantSim   float64
		wantUsers int
	}{
		{"both present", "유사도: 0.82, 유사 사용자: 5명이 좋아한 메뉴", 0.4, 0.82, 5},
		{"empty reason", "", 0.4, 0.4, 1},
		{"only similarity", "유사도: 0.9 기반 추천", 0.1, 0.9, 1},
		{"only users", "유사 사용자: 12명", 0.3, 0.3, 12},
		{"trailing period", "유사도: 0.75.", 0.2, 0.75, 1},
		{"dots only", "유사도: ...", 0.6, 0.6, 1},
		{"missing space", "유사도:0.5", 0.6, 0.6, 1},
		{"user count overflow", "유사 사용자: 99999999999999999999명", 0.5, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sim, users := ParseCollaborativeReason(tt.reason, tt.score)
			if sim != tt.wantSim || users != tt.wantUsers {
				t.Errorf("ParseCollaborativeReason(%q, %v) = (%v, %d), want (%v, %d)",
					tt.reason, tt.score, sim, users, tt.wantSim, tt.wantUsers)
			}
		})
	}
}

func TestCaseConversion(t *testing.T) {
	t.Parallel()

	snake := []struct{ in, want string }{
		{"similarity_score", "similarityScore"},
		{"ab_test_info", "abTestInfo"},
		{"id", "id"},
		{"_private", "_private"},
		{"a__b", "aB"},
	}
	for _, tt := range snake {
		if got := SnakeToCamel(tt.in); got != tt.want {
			t.Errorf("SnakeToCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	camel := []struct{ in, want string }{
		{"similarityScore", "similarity_score"},
		{"menuId", "menu_id"},
		{"plain", "plain"},
	}
	for _, tt := range camel {
		if got := CamelToSnake(tt.in); got != tt.want {
			t.Errorf("CamelToSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelizeKeysRecursive(t *testing.T) {
	t.Parallel()

	in := map[string]interface{}{
		"ab_test_info": map[string]interface{}{
			"recommendation_type": "hybrid",
			"weights":             []interface{}{map[string]interface{}{"content_based": 0.3}},
		},
		"total_count": 2,
	}
	want := map[string]interface{}{
		"abTestInfo": map[string]interface{}{
			"recommendationType": "hybrid",
			"weights":            []interface{}{map[string]interface{}{"contentBased": 0.3}},
		},
		"totalCount": 2,
	}
	if got := CamelizeKeys(in); !reflect.DeepEqual(got, want) {
		t.Errorf("CamelizeKeys = %#v", got)
	}
	if got := SnakeizeKeys(want); !reflect.DeepEqual(got, in) {
		t.Errorf("SnakeizeKeys = %#v", got)
	}
	if got := CamelizeKeys("scalar_value"); got != "scalar_value" {
		t.Errorf("scalars must pass through, got %v", got)
	}
}

func TestBatchCollaborative(t *testing.T) {
	t.Parallel()

	kcal := 480.0
	resp := &models.RecommendationResponse{
		SessionID:  "session_1_abc",
		TotalCount: 2,
		Recommendations: []models.RecommendationItem{
			{Menu: models.Menu{ID: "m1", Name: "비빔밥", Calories: &kcal}, Score: 0.7, Reason: "유사도: 0.82, 유사 사용자: 5명"},
			{Menu: models.Menu{ID: "m2", Name: "냉면"}, Score: 0.4, Reason: "인기 메뉴"},
		},
		ABTestInfo: &models.ABTestInfo{Group: "B", Weights: map[string]float64{"collaborative_weight": 0.6}},
	}

	batch := Batch(resp, true)
	if batch.RecommendationType != models.RecommendationTypeCollaborative {
		t.Errorf("RecommendationType = %q", batch.RecommendationType)
	}
	if len(batch.Recommendations) != 2 {
		t.Fatalf("got %d recommendations", len(batch.Recommendations))
	}

	first, second := batch.Recommendations[0], batch.Recommendations[1]
	if first.Name != "비빔밥" || first.Calories == nil || *first.Calories != kcal {
		t.Errorf("menu fields not lifted: %+v", first)
	}
	if first.SimilarityScore != 0.82 || first.SimilarUsersCount != 5 {
		t.Errorf("first = (%v, %d)", first.SimilarityScore, first.SimilarUsersCount)
	}
	if second.SimilarityScore != 0.4 || second.SimilarUsersCount != 1 {
		t.Errorf("fallbacks not applied: (%v, %d)", second.SimilarityScore, second.SimilarUsersCount)
	}
	if batch.ABTest == nil || batch.ABTest.Weights["collaborativeWeight"] != 0.6 {
		t.Errorf("ABTest = %+v", batch.ABTest)
	}
	if batch.ABTest.RecommendationType != models.RecommendationTypeCollaborative {
		t.Errorf("ABTest type = %q", batch.ABTest.RecommendationType)
	}
}

func TestBatchSimple(t *testing.T) {
	t.Parallel()

	resp := &models.RecommendationResponse{
		Recommendations: []models.RecommendationItem{
			{Menu: models.Menu{ID: "m1", Name: "김밥"}, Score: 0.9, Reason: "유사도: 0.1"},
		},
		RecommendationType: models.RecommendationTypeSimple,
	}
	batch := Batch(resp, false)
	if got := batch.Recommendations[0]; got.SimilarityScore != 0 || got.SimilarUsersCount != 0 {
		t.Errorf("simple results must not carry similarity data: %+v", got)
	}
	if batch.ABTest != nil {
		t.Error("nil A/B info should stay nil")
	}

	empty := Batch(nil, true)
	if empty.Recommendations == nil || len(empty.Recommendations) != 0 {
		t.Errorf("nil response should normalize to an empty list, got %#v", empty.Recommendations)
	}
}
