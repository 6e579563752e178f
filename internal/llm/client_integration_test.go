// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/testinfra"
)

const completionsPath = "/openai/deployments/gpt-test/chat/completions"

func startWireMock(t *testing.T) *testinfra.WireMockContainer {
	t.Helper()
	testinfra.SkipIfNoDocker(t)

	wm, err := testinfra.NewWireMockContainer(context.Background(), testinfra.WithTestLogger(t))
	if err != nil {
		t.Fatalf("start wiremock: %v", err)
	}
	testinfra.CleanupContainer(t, wm)
	return wm
}

func wireMockConfig(url string) *config.OpenAIConfig {
	return &config.OpenAIConfig{
		URL:            url,
		Key:            "integration-key",
		Model:          "gpt-test",
		APIVersion:     "2024-02-01",
		Timeout:        10 * time.Second,
		MaxRetries:     1,
		RetryBaseDelay: 10 * time.Millisecond,
	}
}

func TestClient_Integration_ToolCall(t *testing.T) {
	wm := startWireMock(t)
	ctx := context.Background()

	err := wm.Stub(ctx, testinfra.Stub{
		Method:  "POST",
		URLPath: completionsPath,
		Headers: map[string]string{"api-key": "integration-key"},
		Status:  200,
		JSONBody: map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-test",
			"choices": []any{map[string]any{
				"index": 0,
				"message": map[string]any{
					"role": "assistant",
					"tool_calls": []any{map[string]any{
						"id":   "call_1",
						"type": "function",
						"function": map[string]any{
							"name":      llm.FilterMoviesToolName,
							"arguments": `{"movie_criteria":{"genre":"Horror","mpaa":"R"}}`,
						},
					}},
				},
				"finish_reason": "tool_calls",
			}},
		},
	})
	if err != nil {
		t.Fatalf("stub: %v", err)
	}

	client, err := llm.NewClient(wireMockConfig(wm.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	history := []llm.Message{llm.NewMessage(llm.RoleUser, "something scary and rated R")}
	resp, err := client.Complete(ctx, llm.ChatRequestWithCritic(client.Model(), history))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	calls := resp.Choices[0].Message.Invocations()
	if len(calls) != 1 || calls[0].Function.Name != llm.FilterMoviesToolName {
		t.Fatalf("tool calls = %+v, want one filter_movies call", calls)
	}

	count, err := wm.RequestCount(ctx, "POST", completionsPath)
	if err != nil {
		t.Fatalf("RequestCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("upstream saw %d requests, want 1", count)
	}
}

func TestClient_Integration_UpstreamError(t *testing.T) {
	wm := startWireMock(t)
	ctx := context.Background()

	if err := wm.Stub(ctx, testinfra.Stub{
		Method:   "POST",
		URLPath:  completionsPath,
		Status:   500,
		JSONBody: map[string]any{"error": map[string]any{"message": "boom"}},
	}); err != nil {
		t.Fatalf("stub: %v", err)
	}

	client, err := llm.NewClient(wireMockConfig(wm.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Complete(ctx, llm.CriteriaRequest(client.Model(), "comedies from the 90s"))
	var statusErr *llm.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 500 {
		t.Errorf("Complete() error = %v, want StatusError 500", err)
	}
}
