// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package normalize

import (
	"strings"
	"unicode"
)

// SnakeToCamel converts "similarity_score" to "similarityScore".
// Leading underscores are kept and doubled underscores collapse.
func SnakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	upper := false
	leading := true
	for _, r := range s {
		if r == '_' {
			if leading {
				b.WriteRune(r)
				continue
			}
			upper = true
			continue
		}
		leading = false
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelToSnake converts "similarityScore" to "similarity_score".
func CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelizeKeys returns a copy of v with every object key converted to
// camelCase, descending into nested objects and arrays. Non-container
// values are returned unchanged.
func CamelizeKeys(v interface{}) interface{} {
	return convertKeys(v, SnakeToCamel)
}

// SnakeizeKeys is the inverse of CamelizeKeys.
func SnakeizeKeys(v interface{}) interface{} {
	return convertKeys(v, CamelToSnake)
}

func convertKeys(v interface{}, conv func(string) string) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[conv(k)] = convertKeys(inner, conv)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = convertKeys(inner, conv)
		}
		return out
	default:
		return v
	}
}
