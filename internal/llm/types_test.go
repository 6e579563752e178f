// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package llm

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestMessage_Text(t *testing.T) {
	var m Message
	if err := json.Unmarshal([]byte(`{"role":"assistant","content":null,"tool_calls":[{"id":"call_1","type":"function","function":{"name":"filter_movies","arguments":"{}"}}]}`), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if _, ok := m.Text(); ok {
		t.Error("Text() ok = true for null content")
	}
	calls := m.Invocations()
	if len(calls) != 1 || calls[0].Function.Name != FilterMoviesToolName {
		t.Errorf("Invocations() = %+v", calls)
	}
}

func TestMessage_EmptyContentIsPresent(t *testing.T) {
	m := NewMessage(RoleAssistant, "")
	text, ok := m.Text()
	if !ok || text != "" {
		t.Errorf("Text() = %q, %v, want empty, true", text, ok)
	}
}

func TestChatRequest_OmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(ChatRequest{Messages: []Message{NewMessage(RoleUser, "hi")}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)
	for _, field := range []string{"tools", "response_format", "model", "tool_calls"} {
		if strings.Contains(s, field) {
			t.Errorf("Marshal() = %s, should omit %s", s, field)
		}
	}
}

func TestFilterMoviesTool(t *testing.T) {
	tool := FilterMoviesTool()
	if tool.Type != "function" || tool.Function.Name != "filter_movies" {
		t.Fatalf("FilterMoviesTool() = %+v", tool)
	}

	data, err := json.Marshal(tool)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, field := range []string{"movie_criteria", "release_date_min", "score_max", "natural_language"} {
		if !strings.Contains(string(data), field) {
			t.Errorf("tool schema missing %s", field)
		}
	}
	if strings.Contains(string(data), "top_rated_movies") {
		t.Error("tool schema should not ask the model for the catalog")
	}
}

func TestChatRequestWithCritic(t *testing.T) {
	history := []Message{NewMessage(RoleUser, "something scary")}
	req := ChatRequestWithCritic("m", history)

	if len(req.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != RoleSystem {
		t.Errorf("first role = %q, want system", req.Messages[0].Role)
	}
	if req.Messages[1].Role != RoleUser {
		t.Errorf("second role = %q, want user", req.Messages[1].Role)
	}
	if len(req.Tools) != 1 {
		t.Errorf("tools = %d, want 1", len(req.Tools))
	}
}

func TestQuestionRequest_EmbedsDetails(t *testing.T) {
	req, err := QuestionRequest("m", "who directed it?", map[string]string{"title": "Heat"})
	if err != nil {
		t.Fatalf("QuestionRequest() error = %v", err)
	}
	system, _ := req.Messages[0].Text()
	if !strings.Contains(system, `"title":"Heat"`) {
		t.Errorf("system prompt = %q, want embedded details", system)
	}
}

func TestChatResponse_FirstText(t *testing.T) {
	var nilResp *ChatResponse
	if _, ok := nilResp.FirstText(); ok {
		t.Error("FirstText() on nil ok = true")
	}

	resp := &ChatResponse{Choices: []Choice{
		{Message: Message{Role: RoleAssistant}},
		{Message: NewMessage(RoleAssistant, "second")},
	}}
	if text, ok := resp.FirstText(); !ok || text != "second" {
		t.Errorf("FirstText() = %q, %v, want second, true", text, ok)
	}
}

func TestChoice_ContentAndToolCallsIndependent(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantText  bool
		wantCalls int
	}{
		{"text only", `{"message":{"role":"assistant","content":"hello"}}`, true, 0},
		{"tool calls only", `{"message":{"role":"assistant","content":null,"tool_calls":[{"id":"c1","type":"function","function":{"name":"filter_movies","arguments":"{}"}}]}}`, false, 1},
		{"both", `{"message":{"role":"assistant","content":"see below","tool_calls":[{"id":"c1","type":"function","function":{"name":"filter_movies","arguments":"{}"}}]}}`, true, 1},
		{"neither", `{"message":{"role":"assistant"}}`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Choice
			if err := json.Unmarshal([]byte(tt.body), &c); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if _, ok := c.Message.Text(); ok != tt.wantText {
				t.Errorf("Text() ok = %v, want %v", ok, tt.wantText)
			}
			if got := len(c.Message.Invocations()); got != tt.wantCalls {
				t.Errorf("len(Invocations()) = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}
