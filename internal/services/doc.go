// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package services exposes one typed method per backend endpoint.

Services:
  - RecommendationService: simple, quiz and collaborative recommendations,
    interaction recording and the similar-users listing
  - FavoriteService: add, remove and list saved menus
  - QuestionService: quiz questions and the AI answer endpoint
  - CategoryService: menu categories
  - AuthService: exchanging a Kakao access token for an app session

Every method validates its input before touching the network, performs
exactly one round trip and returns the unwrapped payload. Failures are
returned through transport.Wrap with the service's domain code, so a
transport error keeps its own code (NETWORK_ERROR stays NETWORK_ERROR) and
anything else, such as a validation failure, carries the domain code and a
Korean message suitable for direct display.

Error codes:

	SIMPLE_RECOMMENDATION_ERROR         QUIZ_RECOMMENDATION_ERROR
	COLLABORATIVE_RECOMMENDATION_ERROR  INTERACTION_RECORD_ERROR
	COLLABORATIVE_USERS_ERROR           FAVORITE_ADD_ERROR
	FAVORITE_REMOVE_ERROR               FAVORITE_LIST_ERROR
	QUESTION_LIST_ERROR                 AI_ANSWER_ERROR
	CATEGORY_LIST_ERROR                 KAKAO_LOGIN_ERROR
*/
package services
