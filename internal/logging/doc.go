// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

// Package logging provides zerolog-based structured logging for Menupick.
//
// Unlike a process-wide logger, a *Logger is built once at startup from an
// explicit Config and handed to every component that logs. Each component asks
// for its own category logger, and categories that are not enabled in the
// configuration receive a disabled zerolog.Logger, so callers never need to
// check whether logging is on.
//
// # Quick Start
//
//	logger := logging.New(logging.Config{
//	    Level:      "debug",
//	    Format:     "console",
//	    Categories: []string{"api", "auth"},
//	})
//
//	apiLog := logger.For(logging.CategoryAPI)
//	apiLog.Debug().Str("path", "/api/v1/categories").Msg("request")
//
//	// interaction logging is off: this is a no-op
//	logger.For(logging.CategoryInteraction).Info().Msg("dropped")
//
// # Categories
//
// The known categories are:
//   - api: backend transport requests, responses and errors
//   - auth: login state checks, Kakao OAuth, logout
//   - interaction: fire-and-forget interaction recording
//   - places: Kakao Local searches and proxy fallback
//   - state: per-feature state containers
//   - storage: device storage drivers
//   - supervisor: background service lifecycle (via the slog adapter)
//
// An empty category list enables all of them.
//
// # Context
//
// The session identifier of the current visit can be attached to a context
// with ContextWithSessionID; Ctx then returns a logger that stamps every event
// with session_id and, when present, correlation_id.
//
// # Testing
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	svc := services.NewCategoryService(client, logger)
//	// ... inspect buf.String()
//
// Use Nop() when the output does not matter.
package logging
