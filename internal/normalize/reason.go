// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSimilarUsersCount is used when the reason carries no user count.
const DefaultSimilarUsersCount = 1

var (
	similarityPattern   = regexp.MustCompile(`유사도: ([\d.]+)`)
	similarUsersPattern = regexp.MustCompile(`유사 사용자: (\d+)명`)
)

// ParseCollaborativeReason extracts the similarity score and similar-user
// count from a collaborative recommendation reason. When a value is absent
// or unparseable it falls back to score and DefaultSimilarUsersCount.
func ParseCollaborativeReason(reason string, score float64) (similarity float64, users int) {
	similarity = score
	users = DefaultSimilarUsersCount

	if m := similarityPattern.FindStringSubmatch(reason); m != nil {
		if v, ok := parseLeadingFloat(m[1]); ok {
			similarity = v
		}
	}

	if m := similarUsersPattern.FindStringSubmatch(reason); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			users = v
		}
	}

	return similarity, users
}

// parseLeadingFloat parses the longest numeric prefix of s, which consists of
// digits and dots only: "0.82." reads as 0.82, "1.2.3" as 1.2 and "." fails.
func parseLeadingFloat(s string) (float64, bool) {
	if first := strings.IndexByte(s, '.'); first >= 0 {
		if second := strings.IndexByte(s[first+1:], '.'); second >= 0 {
			s = s[:first+1+second]
		}
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
