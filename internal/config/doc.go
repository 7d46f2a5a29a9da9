// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package config loads Menupick client configuration with Koanf v2.

Sources are layered, later ones overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, or the first of menupick.yaml,
    menupick.yml, config.yaml, config.yml in the working directory
 3. Environment variables, mapped explicitly by envTransformFunc

# Environment Variables

	ENVIRONMENT            development | production (default: development)
	API_BASE_URL           backend origin
	API_TIMEOUT            per-request timeout (default: 20s)
	KAKAO_CLIENT_ID        Kakao REST app key used for OAuth
	KAKAO_CLIENT_SECRET    Kakao client secret
	KAKAO_REDIRECT_URI     default: http://localhost:3000/auth/kakao/callback
	KAKAO_REST_API_KEY     Kakao Local API key
	PLACES_PROXY_URL       CORS relay prefix (default: https://corsproxy.io/?)
	STORAGE_DRIVER         memory | badger
	STORAGE_PATH           BadgerDB directory
	AUTH_POLL_FALLBACK     enable the 5s login-state poll
	LOG_LEVEL              trace | debug | info | warn | error
	LOG_FORMAT             json | console
	LOG_CATEGORIES         comma-separated: api,auth,interaction,places,state,storage,supervisor

# Example YAML

	environment: production
	backend:
	  base_url: https://api.menupick.kr
	  timeout: 20s
	kakao:
	  client_id: abc
	  redirect_uri: https://menupick.kr/auth/kakao/callback
	storage:
	  driver: badger
	  path: /var/lib/menupick
	logging:
	  level: debug
	  categories: [api, auth]

The Kakao client secret travels with the client configuration. That is an
existing exposure of the Kakao app registration, not something to copy into
new deployments.
*/
package config
