// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package models

// KakaoLoginRequest is the body of POST /api/v1/auth/kakao-login.
type KakaoLoginRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// User is the backend's view of the logged-in user.
type User struct {
	ID           string `json:"id"`
	Nickname     string `json:"nickname"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// LoginResult is the payload of the kakao-login endpoint.
// AccessToken is the app's own bearer token and is opaque to the client.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}
