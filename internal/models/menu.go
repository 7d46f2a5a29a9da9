// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package models

// Menu is a menu snapshot as returned by the backend.
// Nutrition fields are optional and nil when the backend omits them.
type Menu struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Price       int      `json:"price,omitempty"`
	Calories    *float64 `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fat         *float64 `json:"fat,omitempty"`
}

// HasNutrition reports whether any nutrition field is present.
func (m *Menu) HasNutrition() bool {
	return m.Calories != nil || m.Protein != nil || m.Carbs != nil || m.Fat != nil
}

// Category is a menu category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	MenuCount   int    `json:"menu_count,omitempty"`
}

// Favorite is a saved menu of the logged-in user.
type Favorite struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	MenuID    string `json:"menu_id"`
	CreatedAt string `json:"created_at"`
	Menu      *Menu  `json:"menu,omitempty"`
}

// AddFavoriteRequest is the body of POST /api/v1/menus/favorites.
type AddFavoriteRequest struct {
	MenuID string `json:"menu_id" validate:"required"`
}

// FavoriteList is the payload of GET /api/v1/menus/favorites.
type FavoriteList struct {
	Favorites  []Favorite `json:"favorites"`
	TotalCount int        `json:"total_count"`
}

// RemoveFavoriteResult is the payload of DELETE /api/v1/menus/favorites/{menu_id}.
type RemoveFavoriteResult struct {
	MenuID  string `json:"menu_id,omitempty"`
	Message string `json:"message,omitempty"`
}
