// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/search"
)

// Recommender is the recommendation engine as seen by the handlers.
type Recommender interface {
	Similar(ctx context.Context, movieID int) ([]catalog.Movie, error)
	FilterCatalog(ctx context.Context, c recommend.Criteria) ([]catalog.Movie, error)
	Stats() recommend.Stats
}

// CatalogStatus reports catalog availability for the readiness probe.
type CatalogStatus interface {
	EnsureLoaded() (bool, error)
	Stats() catalog.Stats
}

// ChatCompleter sends chat completions to the language model.
type ChatCompleter interface {
	Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error)
	Model() string
	BreakerState() string
}

// MovieLookup fetches a movie document from the search index.
type MovieLookup interface {
	GetMovie(ctx context.Context, id string) (*search.MovieDetails, error)
	BreakerState() string
}

// Dependencies wires the handler. LLM and Search may be nil when the
// collaborator is not configured; the endpoints that need them answer 503.
type Dependencies struct {
	Engine  Recommender
	Catalog CatalogStatus
	LLM     ChatCompleter
	Search  MovieLookup
	Version string
}

// Handler serves the Marquee HTTP API.
type Handler struct {
	engine    Recommender
	catalog   CatalogStatus
	llm       ChatCompleter
	search    MovieLookup
	version   string
	startTime time.Time
}

// NewHandler creates a Handler from its dependencies.
//
//	handler := api.NewHandler(api.Dependencies{Engine: engine, Catalog: cache})
//	router := api.NewRouter(handler, cfg)
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		engine:    deps.Engine,
		catalog:   deps.Catalog,
		llm:       deps.LLM,
		search:    deps.Search,
		version:   deps.Version,
		startTime: time.Now(),
	}
}
