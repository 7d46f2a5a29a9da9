// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

// Package normalize reshapes backend payloads into display form.
//
// It flattens (menu, score, reason) triples into Recommendation values,
// converts key casing between the snake_case wire format and the camelCase
// display format, and recovers the similarity score and similar-user count
// that the collaborative endpoint encodes inside its free-text reason, for
// example "유사도: 0.82, 유사 사용자: 5명이 좋아한 메뉴".
//
// The reason parsing is pattern based and therefore brittle; its fallbacks
// (the item's own score, and a count of 1) are part of the contract and
// must not change while the backend keeps encoding these values in text.
package normalize
