// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

/*
Package auth tracks the device's login state and drives the Kakao login.

# Login State

The device is logged in if and only if the bearer token, the nickname and
the email are all present in device storage. Every check recomputes the
answer from storage, so the model holds no state that could drift:

	Unknown --check--> LoggedOut | LoggedIn
	LoggedOut --login callback--> LoggedIn
	LoggedIn --logout--> LoggedOut
	either --check--> either

Manager publishes every state change to its subscribers. Login and logout
publish directly; a Poller that re-checks storage on a fixed interval is
only needed when another process can change storage behind the manager's
back.

# Kakao Login

LoginURL builds the Kakao authorization URL. The authorization code
arrives on the local callback route (CallbackRouter feeds a one-shot
CallbackChannel) and CompleteLogin exchanges it for a Kakao access token
with golang.org/x/oauth2, trades that for the app's bearer token at the
backend, and stores the token, nickname, email and the Kakao access token.

The client secret used by the exchange lives in client configuration. That
is a known risk inherited from the existing Kakao app registration.

# Logout

Logout clears all four stored values. LogoutKeepCache keeps the Kakao
access token so CachedLogin can sign in again without a new consent.
*/
package auth
