// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package services

import (
	"context"
	"net/url"

	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/transport"
)

const pathFavorites = "/api/v1/menus/favorites"

// FavoriteService manages the logged-in user's saved menus.
type FavoriteService struct {
	base
}

// Add saves a menu.
func (s *FavoriteService) Add(ctx context.Context, menuID string) (*models.Favorite, error) {
	req := models.AddFavoriteRequest{MenuID: menuID}
	if err := s.validate(ctx, &req, CodeFavoriteAdd); err != nil {
		return nil, err
	}
	fav, err := transport.Post[models.Favorite](ctx, s.client, pathFavorites, req)
	if err != nil {
		return nil, s.fail(ctx, err, CodeFavoriteAdd)
	}
	return &fav, nil
}

// Remove unsaves a menu.
func (s *FavoriteService) Remove(ctx context.Context, menuID string) (*models.RemoveFavoriteResult, error) {
	req := models.AddFavoriteRequest{MenuID: menuID}
	if err := s.validate(ctx, &req, CodeFavoriteRemove); err != nil {
		return nil, err
	}
	res, err := transport.Delete[models.RemoveFavoriteResult](ctx, s.client, pathFavorites+"/"+url.PathEscape(menuID))
	if err != nil {
		return nil, s.fail(ctx, err, CodeFavoriteRemove)
	}
	if res.MenuID == "" {
		res.MenuID = menuID
	}
	return &res, nil
}

// List returns every saved menu.
func (s *FavoriteService) List(ctx context.Context) (*models.FavoriteList, error) {
	list, err := transport.Get[models.FavoriteList](ctx, s.client, pathFavorites, nil)
	if err != nil {
		return nil, s.fail(ctx, err, CodeFavoriteList)
	}
	if list.Favorites == nil {
		list.Favorites = []models.Favorite{}
	}
	return &list, nil
}
