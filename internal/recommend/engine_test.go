// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/catalog"
)

// writeCatalog writes an embeddings file with one 2-d vector per movie and
// a matching movies file. Movie i gets the vector (1, i) so similarity to
// movie 1 falls as i grows.
func writeCatalog(t *testing.T, n int, skipMovie int) (embPath, moviePath string) {
	t.Helper()
	dir := t.TempDir()

	var emb, movies []string
	for i := 1; i <= n; i++ {
		emb = append(emb, fmt.Sprintf(`{"movie_id":%d,"embeddings":{"data":[{"embedding":[1,%d]}]}}`, i, i-1))
		if i == skipMovie {
			continue
		}
		movies = append(movies, fmt.Sprintf(`{"id":%d,"title":"Movie %d","genres":["Drama"],"mpaa":"PG","release_date":"2000-01-%02d","imdb_score":%d}`, i, i, (i%28)+1, i%10))
	}
	// A catalog record without an embedding.
	movies = append(movies, fmt.Sprintf(`{"id":%d,"title":"Unembedded","genres":["Drama"],"mpaa":"PG","release_date":"2001-01-01","imdb_score":5}`, n+1))

	embPath = filepath.Join(dir, "embeddings.json")
	moviePath = filepath.Join(dir, "topRatedMovies.json")
	if err := os.WriteFile(embPath, []byte("["+strings.Join(emb, ",")+"]"), 0o600); err != nil {
		t.Fatalf("write embeddings: %v", err)
	}
	if err := os.WriteFile(moviePath, []byte("["+strings.Join(movies, ",")+"]"), 0o600); err != nil {
		t.Fatalf("write movies: %v", err)
	}
	return embPath, moviePath
}

func newTestEngine(t *testing.T, cfg *Config, embPath, moviePath string) *Engine {
	t.Helper()
	cat := catalog.NewCache(catalog.NewFileSource(embPath), catalog.NewFileSource(moviePath), zerolog.Nop())
	e, err := NewEngine(cfg, cat, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewEngine_Validation(t *testing.T) {
	if _, err := NewEngine(nil, nil, zerolog.Nop()); err == nil {
		t.Error("NewEngine() without catalog should fail")
	}

	cat := catalog.NewCache(catalog.NewFileSource("a"), catalog.NewFileSource("b"), zerolog.Nop())
	if _, err := NewEngine(&Config{FilterLimit: 0}, cat, zerolog.Nop()); err == nil {
		t.Error("NewEngine() with invalid config should fail")
	}
	if _, err := NewEngine(nil, cat, zerolog.Nop()); err != nil {
		t.Errorf("NewEngine() with default config error = %v", err)
	}
}

func TestEngine_Similar(t *testing.T) {
	embPath, moviePath := writeCatalog(t, 20, 0)
	e := newTestEngine(t, nil, embPath, moviePath)

	movies, err := e.Similar(context.Background(), 1)
	if err != nil {
		t.Fatalf("Similar() error = %v", err)
	}
	if len(movies) != SimilarLimit {
		t.Fatalf("len(Similar()) = %d, want %d", len(movies), SimilarLimit)
	}
	for i, m := range movies {
		if want := i + 2; m.ID != want {
			t.Errorf("movies[%d].ID = %d, want %d", i, m.ID, want)
		}
	}
}

func TestEngine_SimilarFewerThanLimit(t *testing.T) {
	embPath, moviePath := writeCatalog(t, 4, 0)
	e := newTestEngine(t, nil, embPath, moviePath)

	movies, err := e.Similar(context.Background(), 2)
	if err != nil {
		t.Fatalf("Similar() error = %v", err)
	}
	if len(movies) != 3 {
		t.Errorf("len(Similar()) = %d, want 3", len(movies))
	}
}

func TestEngine_SimilarErrors(t *testing.T) {
	embPath, moviePath := writeCatalog(t, 12, 5)

	tests := []struct {
		name    string
		movieID int
		wantErr error
	}{
		{"unknown movie", 999, ErrMovieNotFound},
		{"catalog movie without embedding", 13, ErrNoEmbedding},
		{"ranked id missing from catalog", 1, ErrCatalogInconsistent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, nil, embPath, moviePath)
			_, err := e.Similar(context.Background(), tt.movieID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Similar(%d) error = %v, want %v", tt.movieID, err, tt.wantErr)
			}
		})
	}
}

func TestEngine_CatalogUnavailable(t *testing.T) {
	dir := t.TempDir()
	e := newTestEngine(t, nil, filepath.Join(dir, "missing.json"), filepath.Join(dir, "also-missing.json"))

	if _, err := e.Similar(context.Background(), 1); !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("Similar() error = %v, want ErrCatalogUnavailable", err)
	}
	if _, err := e.FilterCatalog(context.Background(), Criteria{}); !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("FilterCatalog() error = %v, want ErrCatalogUnavailable", err)
	}
	if got := e.Stats().Errors; got != 2 {
		t.Errorf("Stats().Errors = %d, want 2", got)
	}
}

func TestEngine_PruneRankings(t *testing.T) {
	embPath, moviePath := writeCatalog(t, 5, 0)
	e := newTestEngine(t, &Config{FilterLimit: 10, RankingCacheSize: 8, RankingCacheTTL: 20 * time.Millisecond}, embPath, moviePath)

	for _, id := range []int{1, 2} {
		if _, err := e.Similar(context.Background(), id); err != nil {
			t.Fatalf("Similar(%d) error = %v", id, err)
		}
	}
	if got := e.PruneRankings(); got != 0 {
		t.Errorf("PruneRankings() before expiry = %d, want 0", got)
	}

	time.Sleep(50 * time.Millisecond)

	if got := e.PruneRankings(); got != 2 {
		t.Errorf("PruneRankings() after expiry = %d, want 2", got)
	}
	if got := e.Stats().RankingCacheSize; got != 0 {
		t.Errorf("RankingCacheSize after prune = %d, want 0", got)
	}
}

func TestEngine_PruneRankings_CacheDisabled(t *testing.T) {
	embPath, moviePath := writeCatalog(t, 3, 0)
	e := newTestEngine(t, &Config{FilterLimit: 10}, embPath, moviePath)

	if _, err := e.Similar(context.Background(), 1); err != nil {
		t.Fatalf("Similar() error = %v", err)
	}
	if got := e.PruneRankings(); got != 0 {
		t.Errorf("PruneRankings() = %d, want 0", got)
	}
	if stats := e.Stats(); stats.RankingCacheHits != 0 || stats.RankingCacheMiss != 0 {
		t.Errorf("cache hits/misses = %d/%d with cache disabled, want 0/0", stats.RankingCacheHits, stats.RankingCacheMiss)
	}
}

func TestEngine_FilterCatalog(t *testing.T) {
	embPath, moviePath := writeCatalog(t, 30, 0)
	e := newTestEngine(t, &Config{FilterLimit: 5}, embPath, moviePath)

	movies, err := e.FilterCatalog(context.Background(), Criteria{Genre: strPtr("drama")})
	if err != nil {
		t.Fatalf("FilterCatalog() error = %v", err)
	}
	if len(movies) != 5 {
		t.Fatalf("len(FilterCatalog()) = %d, want 5", len(movies))
	}
	for i, m := range movies {
		if m.ID != i+1 {
			t.Errorf("movies[%d].ID = %d, want %d", i, m.ID, i+1)
		}
	}

	none, err := e.FilterCatalog(context.Background(), Criteria{MPAA: strPtr("NC-17")})
	if err != nil {
		t.Fatalf("FilterCatalog() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("len(FilterCatalog()) = %d, want 0", len(none))
	}
}

func TestEngine_CanceledContext(t *testing.T) {
	embPath, moviePath := writeCatalog(t, 5, 0)
	e := newTestEngine(t, nil, embPath, moviePath)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Similar(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Similar() error = %v, want context.Canceled", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *DefaultConfig(), false},
		{"cache disabled", Config{FilterLimit: 10}, false},
		{"zero filter limit", Config{FilterLimit: 0}, true},
		{"negative cache size", Config{FilterLimit: 10, RankingCacheSize: -1}, true},
		{"cache without ttl", Config{FilterLimit: 10, RankingCacheSize: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	orig := DefaultConfig()
	clone := orig.Clone()
	clone.FilterLimit = 99

	if orig.FilterLimit == 99 {
		t.Error("Clone() shares state with the original")
	}
}
