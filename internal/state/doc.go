// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package state holds the per-feature view state the screens render:
recommendations, favorites, quiz questions, categories and nearby places.

Each container owns a loading flag, an error message and its results, and
exposes an immutable Snapshot. Operations never return errors; a failure is
stored as the user-facing message and logged.

Overlapping requests are resolved by a generation counter. Starting a load
cancels the request it supersedes, and a response that arrives after a newer
request started is discarded and counted in
menupick_state_stale_responses_total. Switching recommendation mode discards
both the current results and any request in flight.

User actions (select, favorite, search, category click, share) are recorded
through a Tracker, normally an *interaction.Recorder bound to the visit's
session id. Recording is fire-and-forget.
*/
package state
