// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/search"
	"github.com/tomtom215/marquee/internal/testinfra"
)

func TestClient_Integration_GetMovie(t *testing.T) {
	testinfra.SkipIfNoDocker(t)
	ctx := context.Background()

	wm, err := testinfra.NewWireMockContainer(ctx, testinfra.WithTestLogger(t))
	if err != nil {
		t.Fatalf("start wiremock: %v", err)
	}
	testinfra.CleanupContainer(t, wm)

	const docPath = "/indexes/idx-movies/docs/603"
	if err := wm.Stub(ctx, testinfra.Stub{
		Method:  "GET",
		URLPath: docPath,
		Headers: map[string]string{"api-key": "integration-key"},
		Status:  200,
		JSONBody: map[string]any{
			"id":         "603",
			"title":      "The Matrix",
			"mpaa":       "R",
			"imdb_score": 8.7,
			"genres":     []string{"Action", "Science Fiction"},
		},
	}); err != nil {
		t.Fatalf("stub: %v", err)
	}
	if err := wm.Stub(ctx, testinfra.Stub{
		Method:  "GET",
		URLPath: "/indexes/idx-movies/docs/1",
		Status:  404,
	}); err != nil {
		t.Fatalf("stub: %v", err)
	}

	store, err := search.NewDetailStore(time.Minute)
	if err != nil {
		t.Fatalf("NewDetailStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client, err := search.NewClient(&config.SearchConfig{
		URL:        wm.URL,
		Key:        "integration-key",
		APIVersion: "2023-11-01",
		Index:      "idx-movies",
		Timeout:    10 * time.Second,
	}, store)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		details, err := client.GetMovie(ctx, "603")
		if err != nil {
			t.Fatalf("GetMovie() error = %v", err)
		}
		if details.Title != "The Matrix" {
			t.Errorf("title = %q, want The Matrix", details.Title)
		}
	}

	count, err := wm.RequestCount(ctx, "GET", docPath)
	if err != nil {
		t.Fatalf("RequestCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("upstream saw %d requests, want 1 (second read served from the store)", count)
	}

	if _, err := client.GetMovie(ctx, "1"); !errors.Is(err, search.ErrNotFound) {
		t.Errorf("GetMovie(missing) error = %v, want ErrNotFound", err)
	}
}
