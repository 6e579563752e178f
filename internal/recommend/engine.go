// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// Engine answers similarity and criteria requests against the catalog
// cache. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog  *catalog.Cache
	rankings *cache.LRU[int, []SimilarityPair]

	similarRequests atomic.Int64
	filterRequests  atomic.Int64
	errorCount      atomic.Int64
}

// NewEngine creates an engine over an existing catalog cache.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Cache, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("catalog cache is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
	}
	if cfg.RankingCacheSize > 0 {
		e.rankings = cache.NewLRU[int, []SimilarityPair]("similarity_rankings", cfg.RankingCacheSize, cfg.RankingCacheTTL)
	}
	return e, nil
}

// ensureLoaded maps an unavailable catalog to ErrCatalogUnavailable.
func (e *Engine) ensureLoaded() error {
	ok, err := e.catalog.EnsureLoaded()
	if err != nil {
		return err
	}
	if !ok {
		return ErrCatalogUnavailable
	}
	return nil
}

// Similar returns up to SimilarLimit catalog records most similar to
// movieID, best first.
//
// Errors:
//   - ErrCatalogUnavailable when a source file is missing
//   - ErrMovieNotFound when the id is in neither collection
//   - ErrNoEmbedding when the movie exists but has no vector
//   - ErrCatalogInconsistent when a ranked id has no catalog record
func (e *Engine) Similar(ctx context.Context, movieID int) ([]catalog.Movie, error) {
	e.similarRequests.Add(1)
	logger := logging.Ctx(ctx).With().Str("component", "recommend").Int("movie_id", movieID).Logger()

	movies, err := e.similar(ctx, movieID)
	if err != nil {
		e.errorCount.Add(1)
		logger.Debug().Err(err).Msg("Similar movies request failed")
		return nil, err
	}

	logger.Debug().Int("results", len(movies)).Msg("Similar movies resolved")
	return movies, nil
}

func (e *Engine) similar(ctx context.Context, movieID int) ([]catalog.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.ensureLoaded(); err != nil {
		return nil, err
	}

	top, err := e.rank(movieID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]catalog.Movie, 0, len(top))
	for _, pair := range top {
		m, ok := e.catalog.Movie(pair.MovieID)
		if !ok {
			e.logger.Error().
				Int("movie_id", movieID).
				Int("missing_id", pair.MovieID).
				Msg("Ranked movie has no catalog record")
			return nil, fmt.Errorf("%w: movie %d", ErrCatalogInconsistent, pair.MovieID)
		}
		out = append(out, m)
	}
	return out, nil
}

// rank returns the top SimilarLimit pairs for movieID, from the ranking
// cache when possible.
func (e *Engine) rank(movieID int) ([]SimilarityPair, error) {
	if e.rankings != nil {
		if top, ok := e.rankings.Get(movieID); ok {
			return top, nil
		}
	}

	embeddings := e.catalog.Embeddings()
	start := time.Now()

	pairs, err := FindSimilar(movieID, embeddings)
	if err != nil {
		if errors.Is(err, ErrNoEmbedding) {
			if _, known := e.catalog.Movie(movieID); !known {
				if _, embedded := e.catalog.Embedding(movieID); !embedded {
					return nil, fmt.Errorf("%w: %d", ErrMovieNotFound, movieID)
				}
			}
		}
		return nil, err
	}
	RankSimilar(pairs)
	metrics.RecordSimilarityRanking(time.Since(start), len(pairs))

	top := pairs
	if len(top) > SimilarLimit {
		top = append([]SimilarityPair(nil), pairs[:SimilarLimit]...)
	}

	if e.rankings != nil {
		e.rankings.Add(movieID, top)
	}
	return top, nil
}

// FilterCatalog applies c to the catalog and returns at most FilterLimit
// matches in catalog order.
func (e *Engine) FilterCatalog(ctx context.Context, c Criteria) ([]catalog.Movie, error) {
	e.filterRequests.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.ensureLoaded(); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	logger := logging.Ctx(ctx).With().Str("component", "recommend").Logger()
	matched := Filter(logger, c, e.catalog.Movies())
	metrics.RecordFilterResult(len(matched))

	logger.Debug().
		Str("criteria", c.String()).
		Int("matched", len(matched)).
		Msg("Catalog filtered")

	if len(matched) > e.config.FilterLimit {
		matched = matched[:e.config.FilterLimit]
	}
	return matched, nil
}

// Stats returns request counters and the catalog state.
func (e *Engine) Stats() Stats {
	s := Stats{
		SimilarRequests:   e.similarRequests.Load(),
		FilterRequests:    e.filterRequests.Load(),
		Errors:            e.errorCount.Load(),
		Catalog:           e.catalog.Stats(),
		RankingCacheLimit: e.config.RankingCacheSize,
	}
	if e.rankings != nil {
		s.RankingCacheHits, s.RankingCacheMiss, s.RankingCacheSize = e.rankings.Stats()
	}
	return s
}

// PruneRankings drops expired rankings and returns how many were removed.
// It is a no-op when the ranking cache is disabled.
func (e *Engine) PruneRankings() int {
	if e.rankings == nil {
		return 0
	}
	removed := e.rankings.CleanupExpired()
	if removed > 0 {
		e.logger.Debug().Int("removed", removed).Msg("Expired rankings pruned")
	}
	return removed
}
