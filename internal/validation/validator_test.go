// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type recommendRequest struct {
	TimeSlot   string  `json:"time_slot" validate:"required,timeslot"`
	SessionID  string  `json:"session_id" validate:"required,sessionid"`
	CategoryID *string `json:"category_id,omitempty"`
}

type quizRequest struct {
	SessionID string   `json:"session_id" validate:"required,sessionid"`
	Answers   []string `json:"answers" validate:"min=1"`
	Limit     int      `json:"limit" validate:"omitempty,min=1,max=50"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	category := "korean"
	tests := []struct {
		name  string
		input interface{}
	}{
		{"lunch without category", &recommendRequest{TimeSlot: "lunch", SessionID: "session_1700000000000_abc123def"}},
		{"dinner with category", &recommendRequest{TimeSlot: "dinner", SessionID: "session_1_x", CategoryID: &category}},
		{"opaque session", &recommendRequest{TimeSlot: "lunch", SessionID: "abc"}},
		{"quiz one answer", &quizRequest{SessionID: "session_1_x", Answers: []string{"spicy"}}},
		{"quiz with limit", &quizRequest{SessionID: "session_1_x", Answers: []string{"a", "b"}, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing time slot",
			input:     &recommendRequest{SessionID: "session_1_x"},
			wantField: "time_slot",
			wantTag:   "required",
			wantMsg:   "time_slot is required",
		},
		{
			name:      "unknown time slot",
			input:     &recommendRequest{TimeSlot: "brunch", SessionID: "session_1_x"},
			wantField: "time_slot",
			wantTag:   "timeslot",
			wantMsg:   "breakfast, lunch, dinner",
		},
		{
			name:      "missing session",
			input:     &recommendRequest{TimeSlot: "lunch"},
			wantField: "session_id",
			wantTag:   "required",
		},
		{
			name:      "session with whitespace",
			input:     &recommendRequest{TimeSlot: "lunch", SessionID: "session 1"},
			wantField: "session_id",
			wantTag:   "sessionid",
		},
		{
			name:      "overlong session",
			input:     &recommendRequest{TimeSlot: "lunch", SessionID: strings.Repeat("s", MaxSessionIDLength+1)},
			wantField: "session_id",
			wantTag:   "sessionid",
		},
		{
			name:      "no quiz answers",
			input:     &quizRequest{SessionID: "session_1_x"},
			wantField: "answers",
			wantTag:   "min",
			wantMsg:   "at least 1 items",
		},
		{
			name:      "limit too large",
			input:     &quizRequest{SessionID: "session_1_x", Answers: []string{"a"}, Limit: 99},
			wantField: "limit",
			wantTag:   "max",
			wantMsg:   "at most 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&recommendRequest{})
	if err == nil {
		t.Fatal("expected error")
	}

	fields := err.Fields()
	if len(fields) != 2 || fields[0] != "time_slot" || fields[1] != "session_id" {
		t.Errorf("Fields() = %v, want [time_slot session_id]", fields)
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("combined message should join with '; ': %q", err.Error())
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	err := &RequestValidationError{}
	if err.Error() != "validation failed" {
		t.Errorf("Error() = %q, want 'validation failed'", err.Error())
	}
}
