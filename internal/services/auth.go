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

const pathKakaoLogin = "/api/v1/auth/kakao-login"

// AuthService exchanges third-party tokens for app sessions.
type AuthService struct {
	base
}

// KakaoLogin trades a Kakao access token for the app's bearer token.
func (s *AuthService) KakaoLogin(ctx context.Context, accessToken string) (*models.LoginResult, error) {
	req := models.KakaoLoginRequest{AccessToken: accessToken}
	if err := s.validate(ctx, &req, CodeKakaoLogin); err != nil {
		return nil, err
	}
	res, err := transport.Post[models.LoginResult](ctx, s.client, pathKakaoLogin, req)
	if err != nil {
		return nil, s.fail(ctx, err, CodeKakaoLogin)
	}
	return &res, nil
}
