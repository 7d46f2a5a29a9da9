// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

// Package storage is the device-local key/value store.
//
// The client persists exactly four values: the app's bearer token, the
// nickname and email kept as a fast login-state cache, and the cached Kakao
// access token used for re-login without consent. Store is the port the auth
// and transport layers depend on; MemoryStore serves tests and ephemeral
// runs, BadgerStore persists across restarts.
//
// Driver selection:
//
//	memory  - in-process map, lost on exit (default)
//	badger  - BadgerDB directory at storage.path
package storage
