// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/metrics"
)

// ErrMalformedSource is returned when a backing document cannot be decoded.
var ErrMalformedSource = errors.New("malformed catalog source")

// Cache holds the embedding and movie collections. Each collection has its
// own lock and is filled at most once; the two are never locked together.
type Cache struct {
	embeddings *collection[Embedding]
	movies     *collection[Movie]

	unavailable atomic.Int64
	logger      zerolog.Logger
}

// NewCache creates an empty cache backed by the two sources.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCache(embeddings, movies Source, logger zerolog.Logger) *Cache {
	return &Cache{
		embeddings: &collection[Embedding]{
			name:   "embeddings",
			source: embeddings,
			idOf:   func(e Embedding) int { return e.MovieID },
		},
		movies: &collection[Movie]{
			name:   "movies",
			source: movies,
			idOf:   func(m Movie) int { return m.ID },
		},
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// EnsureLoaded makes both collections available. It returns false without
// an error when either source is missing; existence is checked on every
// call, even after a successful load. A malformed source is a hard error
// and leaves that collection untouched.
func (c *Cache) EnsureLoaded() (bool, error) {
	if !c.embeddings.source.Exists() || !c.movies.source.Exists() {
		c.unavailable.Add(1)
		c.logger.Debug().
			Str("embeddings", c.embeddings.source.String()).
			Str("movies", c.movies.source.String()).
			Msg("Catalog sources missing")
		return false, nil
	}

	if err := c.embeddings.fill(c.logger); err != nil {
		return false, err
	}
	if err := c.movies.fill(c.logger); err != nil {
		return false, err
	}
	return true, nil
}

// Embeddings returns the installed embedding records in file order.
// The returned slice must not be modified.
func (c *Cache) Embeddings() []Embedding {
	return c.embeddings.all()
}

// Embedding looks up the record for a movie id.
func (c *Cache) Embedding(movieID int) (Embedding, bool) {
	return c.embeddings.get(movieID)
}

// Movies returns the installed catalog records in file order.
// The returned slice must not be modified.
func (c *Cache) Movies() []Movie {
	return c.movies.all()
}

// Movie looks up a catalog record by id.
func (c *Cache) Movie(id int) (Movie, bool) {
	return c.movies.get(id)
}

// Stats returns current counts.
func (c *Cache) Stats() Stats {
	embeddings := c.embeddings.all()
	embedded := 0
	for i := range embeddings {
		if embeddings[i].HasVector() {
			embedded++
		}
	}

	return Stats{
		Embeddings:       len(embeddings),
		EmbeddedMovies:   embedded,
		Movies:           c.movies.count(),
		EmbeddingParses:  c.embeddings.parses.Load(),
		MovieParses:      c.movies.parses.Load(),
		UnavailableLoads: c.unavailable.Load(),
	}
}

// collection is one lazily filled, id-indexed slice.
type collection[T any] struct {
	name   string
	source Source
	idOf   func(T) int

	mu     sync.RWMutex
	loaded bool
	items  []T
	index  map[int]int
	parses atomic.Int64
}

// fill reads and installs the source once. The loaded check and the
// install happen under the same write lock. An empty document is malformed:
// a loaded collection is never empty.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (col *collection[T]) fill(logger zerolog.Logger) error {
	col.mu.Lock()
	defer col.mu.Unlock()

	if col.loaded {
		return nil
	}

	start := time.Now()
	data, err := col.source.ReadAll()
	if err != nil {
		metrics.RecordCatalogLoad(col.name, "read_error", 0)
		return fmt.Errorf("read %s from %s: %w", col.name, col.source, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		metrics.RecordCatalogLoad(col.name, "malformed", 0)
		return fmt.Errorf("%w: %s from %s: %v", ErrMalformedSource, col.name, col.source, err)
	}
	if len(items) == 0 {
		metrics.RecordCatalogLoad(col.name, "malformed", 0)
		return fmt.Errorf("%w: %s from %s: no records", ErrMalformedSource, col.name, col.source)
	}

	index := make(map[int]int, len(items))
	for i := range items {
		id := col.idOf(items[i])
		if prev, dup := index[id]; dup {
			metrics.RecordCatalogLoad(col.name, "malformed", 0)
			return fmt.Errorf("%w: %s from %s: duplicate id %d at positions %d and %d",
				ErrMalformedSource, col.name, col.source, id, prev, i)
		}
		index[id] = i
	}

	col.items = items
	col.index = index
	col.loaded = true
	col.parses.Add(1)
	metrics.RecordCatalogLoad(col.name, "loaded", len(items))

	logger.Info().
		Str("collection", col.name).
		Str("source", col.source.String()).
		Int("records", len(items)).
		Dur("duration", time.Since(start)).
		Msg("Catalog collection loaded")
	return nil
}

func (col *collection[T]) all() []T {
	col.mu.RLock()
	defer col.mu.RUnlock()
	return col.items
}

func (col *collection[T]) count() int {
	col.mu.RLock()
	defer col.mu.RUnlock()
	return len(col.items)
}

func (col *collection[T]) get(id int) (T, bool) {
	col.mu.RLock()
	defer col.mu.RUnlock()

	i, ok := col.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return col.items[i], true
}
