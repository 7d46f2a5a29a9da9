// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package services

import (
	"context"

	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/transport"
)

const pathCategories = "/api/v1/categories"

// CategoryService lists menu categories.
type CategoryService struct {
	base
}

// List returns every category.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := transport.Get[[]models.Category](ctx, s.client, pathCategories, nil)
	if err != nil {
		return nil, s.fail(ctx, err, CodeCategoryList)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
