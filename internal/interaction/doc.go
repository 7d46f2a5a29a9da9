// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package interaction records user actions as best-effort telemetry.

Each user action produces one event carrying the visit's session id, an
optional menu id, the interaction type and a fixed strength weight:

	click                 0.5
	favorite (add)        1.0
	favorite (remove)     0.3
	recommend_select      0.8
	search                0.6
	view_detail           0.7 (0.6 when opened from a list preview)
	share                 0.9

A Recorder publishes events onto an in-process Watermill topic and returns
immediately; it never returns an error and never waits on the network. The
Pipeline, run under the supervisor tree, subscribes to the topic and POSTs
each event to the backend with a per-event timeout. Delivery failures are
logged and counted, never surfaced: recording must not block or fail the
user action it accompanies.

Events published while no Pipeline is subscribed are dropped. RecordNow
bypasses the topic for callers that want a synchronous best-effort send.
*/
package interaction
