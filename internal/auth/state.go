// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package auth

// State is the device's login state.
type State int

const (
	StateUnknown State = iota
	StateLoggedOut
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

func stateFor(loggedIn bool) State {
	if loggedIn {
		return StateLoggedIn
	}
	return StateLoggedOut
}
