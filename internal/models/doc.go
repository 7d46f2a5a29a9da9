// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package models defines the data exchanged with the Menupick backend.

Wire types carry snake_case JSON tags exactly as the backend sends them.
Display types produced by the normalize package (Recommendation,
ABTestDisplay) carry camelCase tags because that is what screens consume.

Key Components:

  - Envelope: the {success, data, error} wrapper every backend response uses
  - Menu, Category, Favorite, Question: catalog snapshots, never mutated
    locally except for the Recommendation.IsSaved flag
  - RecommendationItem / RecommendationResponse: (menu, score, reason)
    triples as returned by the simple, quiz and collaborative endpoints
  - Recommendation: the flattened, display-ready form
  - ABTestInfo: descriptive A/B bucket data attached to a batch
  - InteractionRequest: write-only interaction event
  - KakaoLoginRequest / LoginResult: backend login exchange
*/
package models
