// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	_ "github.com/tomtom215/marquee/docs"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		deps       Dependencies
		wantStatus string
		wantLLM    string
	}{
		{
			name:       "loaded without collaborators",
			deps:       Dependencies{Catalog: &fakeCatalog{stats: catalog.Stats{Movies: 3, Embeddings: 3}}},
			wantStatus: "healthy",
			wantLLM:    collaboratorDisabled,
		},
		{
			name:       "not loaded",
			deps:       Dependencies{Catalog: &fakeCatalog{}, LLM: &fakeLLM{}},
			wantStatus: "degraded",
			wantLLM:    "closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.deps.Version = "test"
			rec := do(t, newTestServer(tt.deps), http.MethodGet, "/api/health", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var resp struct {
				Status string              `json:"status"`
				Data   models.HealthStatus `json:"data"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != models.StatusSuccess {
				t.Errorf("envelope status = %q", resp.Status)
			}
			if resp.Data.Status != tt.wantStatus {
				t.Errorf("health status = %q, want %q", resp.Data.Status, tt.wantStatus)
			}
			if resp.Data.Collaborators["openai"] != tt.wantLLM {
				t.Errorf("openai = %q, want %q", resp.Data.Collaborators["openai"], tt.wantLLM)
			}
			if resp.Data.Collaborators["search"] != collaboratorDisabled {
				t.Errorf("search = %q, want disabled", resp.Data.Collaborators["search"])
			}
			if resp.Data.Version != "test" {
				t.Errorf("version = %q, want test", resp.Data.Version)
			}
		})
	}
}

func TestHealth_EngineCounters(t *testing.T) {
	engine := &fakeEngine{stats: recommend.Stats{
		SimilarRequests:   7,
		FilterRequests:    3,
		Errors:            1,
		RankingCacheHits:  4,
		RankingCacheMiss:  3,
		RankingCacheSize:  3,
		RankingCacheLimit: 1024,
	}}
	rec := do(t, newTestServer(Dependencies{Engine: engine, Catalog: &fakeCatalog{}}), http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data models.HealthStatus `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := resp.Data.Recommend
	if got == nil {
		t.Fatal("recommend block missing")
	}
	want := models.EngineHealth{
		SimilarRequests:    7,
		FilterRequests:     3,
		Errors:             1,
		RankingCacheHits:   4,
		RankingCacheMisses: 3,
		RankingCacheSize:   3,
		RankingCacheLimit:  1024,
	}
	if *got != want {
		t.Errorf("recommend = %+v, want %+v", *got, want)
	}
}

func TestHealthLive(t *testing.T) {
	rec := do(t, newTestServer(Dependencies{}), http.MethodGet, "/api/health/live", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name    string
		catalog *fakeCatalog
		status  int
		code    string
	}{
		{"ready", &fakeCatalog{ok: true}, http.StatusOK, ""},
		{"sources missing", &fakeCatalog{}, http.StatusServiceUnavailable, models.CodeCatalogUnavailable},
		{"sources malformed", &fakeCatalog{err: errors.New("bad json")}, http.StatusServiceUnavailable, models.CodeCatalogLoadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(Dependencies{Catalog: tt.catalog}), http.MethodGet, "/api/health/ready", "")
			if tt.code == "" {
				if rec.Code != tt.status {
					t.Errorf("status = %d, want %d", rec.Code, tt.status)
				}
				return
			}
			assertError(t, rec, tt.status, tt.code)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(Dependencies{}), http.MethodDelete, "/api/movies/1/similar", "")
	assertError(t, rec, http.StatusMethodNotAllowed, models.CodeMethodNotAllowed)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(Dependencies{})
	do(t, h, http.MethodGet, "/api/movies/1/similar", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/movies/{movieID}/similar") {
		t.Error("metrics do not carry the route pattern label")
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{}
	cfg.Security.CORSOrigins = []string{"http://localhost:4001"}
	cfg.Security.RateLimitReqs = 100
	cfg.Security.RateLimitWindow = time.Minute
	h := NewRouter(NewHandler(Dependencies{Engine: &fakeEngine{}, Catalog: &fakeCatalog{}}), cfg).Setup()

	req := httptest.NewRequest(http.MethodOptions, "/api/movie-chat", nil)
	req.Header.Set("Origin", "http://localhost:4001")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4001" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the configured origin", got)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.Security.RateLimitReqs = 2
	cfg.Security.RateLimitWindow = time.Minute
	h := NewRouter(NewHandler(Dependencies{Engine: &fakeEngine{}, Catalog: &fakeCatalog{ok: true}}), cfg).Setup()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = do(t, h, http.MethodGet, "/api/movies/1/similar", "")
	}
	assertError(t, last, http.StatusTooManyRequests, models.CodeRateLimited)

	// Health probes sit outside the limiter.
	if rec := do(t, h, http.MethodGet, "/api/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Security.RateLimitReqs = 1
	cfg.Security.RateLimitWindow = time.Minute
	cfg.Security.RateLimitDisabled = true
	h := NewRouter(NewHandler(Dependencies{Engine: &fakeEngine{}, Catalog: &fakeCatalog{}}), cfg).Setup()

	for i := 0; i < 3; i++ {
		if rec := do(t, h, http.MethodGet, "/api/movies/1/similar", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}
}

func TestSwaggerDoc(t *testing.T) {
	rec := do(t, newTestServer(Dependencies{}), http.MethodGet, "/swagger/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/movies/{movieID}/similar") {
		t.Error("OpenAPI document does not describe the similar route")
	}
}
