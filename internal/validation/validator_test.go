// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"strings"
	"testing"
)

type testMessage struct {
	Role    string  `json:"role" validate:"required,oneof=user assistant"`
	Content *string `json:"content" validate:"notblank,max=20"`
}

type testRequest struct {
	Messages []testMessage `json:"messages" validate:"required,min=1,max=3,dive"`
	Question string        `json:"question" validate:"notblank"`
}

func strPtr(s string) *string { return &s }

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	valid := testMessage{Role: "user", Content: strPtr("a comedy please")}

	tests := []struct {
		name      string
		input     testRequest
		wantField string
		wantTag   string
	}{
		{
			name:  "valid",
			input: testRequest{Messages: []testMessage{valid}, Question: "who directed it?"},
		},
		{
			name:      "no messages",
			input:     testRequest{Question: "q"},
			wantField: "messages",
			wantTag:   "required",
		},
		{
			name:      "too many messages",
			input:     testRequest{Messages: []testMessage{valid, valid, valid, valid}, Question: "q"},
			wantField: "messages",
			wantTag:   "max",
		},
		{
			name:      "bad role",
			input:     testRequest{Messages: []testMessage{{Role: "robot", Content: strPtr("x")}}, Question: "q"},
			wantField: "messages[0].role",
			wantTag:   "oneof",
		},
		{
			name:      "nil content",
			input:     testRequest{Messages: []testMessage{{Role: "user"}}, Question: "q"},
			wantField: "messages[0].content",
			wantTag:   "notblank",
		},
		{
			name:      "whitespace content",
			input:     testRequest{Messages: []testMessage{{Role: "user", Content: strPtr(" \t ")}}, Question: "q"},
			wantField: "messages[0].content",
			wantTag:   "notblank",
		},
		{
			name:      "blank question",
			input:     testRequest{Messages: []testMessage{valid}, Question: "   "},
			wantField: "question",
			wantTag:   "notblank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if tt.wantTag == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			first := verr.Errors()[0]
			if first.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", first.Field(), tt.wantField)
			}
			if first.Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", first.Tag(), tt.wantTag)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	verr := ValidateStruct(&testRequest{Messages: []testMessage{{Role: "robot"}}, Question: ""})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]any)
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v, want 3 entries", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "messages[0].role must be one of: user assistant") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestErrorMessages(t *testing.T) {
	verr := ValidateStruct(&testRequest{
		Messages: []testMessage{{Role: "user", Content: strPtr(strings.Repeat("x", 21))}},
		Question: "q",
	})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	want := "messages[0].content must have at most 20 characters"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
