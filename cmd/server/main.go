// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/marquee/docs" // OpenAPI document for /swagger
	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/search"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("embeddings_path", cfg.Data.EmbeddingsPath).
		Str("catalog_path", cfg.Data.CatalogPath).
		Bool("openai_enabled", cfg.OpenAI.Enabled()).
		Bool("search_enabled", cfg.Search.Enabled()).
		Msg("Starting Marquee")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("Wildcard CORS origin configured in production")
	}

	cache := catalog.NewCache(
		catalog.NewFileSource(cfg.Data.EmbeddingsPath),
		catalog.NewFileSource(cfg.Data.CatalogPath),
		logging.WithComponent("catalog"),
	)

	engine, err := recommend.NewEngine(&recommend.Config{
		FilterLimit:      cfg.Recommend.FilterLimit,
		RankingCacheSize: cfg.Recommend.RankingCacheSize,
		RankingCacheTTL:  cfg.Recommend.RankingCacheTTL,
	}, cache, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	deps := api.Dependencies{
		Engine:  engine,
		Catalog: cache,
		Version: version,
	}

	// Interface fields stay nil when a collaborator is off, never a typed nil.
	if chat := initLLM(cfg); chat != nil {
		deps.LLM = chat
	}

	lookup, store := initSearch(cfg)
	if lookup != nil {
		deps.Search = lookup
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				logging.Warn().Err(err).Msg("Failed to close movie detail store")
			}
		}()
	}

	router := api.NewRouter(api.NewHandler(deps), cfg)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Data.WarmOnStart {
		tree.AddDataService(services.NewCatalogWarmer(cache, logging.WithComponent("catalog")))
	}
	if cfg.Recommend.RankingCacheSize > 0 {
		tree.AddDataService(services.NewRankingPrunerService(engine, cfg.Recommend.RankingCacheTTL, logging.WithComponent("recommend")))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Marquee stopped")
}

// initLLM returns nil when the language model is not configured.
func initLLM(cfg *config.Config) *llm.Client {
	client, err := llm.NewClient(&cfg.OpenAI)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		logging.Info().Msg("Language model not configured; chat endpoints will answer 503")
		return nil
	case err != nil:
		logging.Fatal().Err(err).Msg("Failed to create language model client")
	}

	logging.Info().
		Str("model", client.Model()).
		Str("key", logging.RedactSecret(cfg.OpenAI.Key)).
		Msg("Language model client ready")
	return client
}

// initSearch returns nil values when the search index is not configured.
// The detail store is only opened when caching is enabled.
func initSearch(cfg *config.Config) (*search.Client, *search.DetailStore) {
	if !cfg.Search.Enabled() {
		logging.Info().Msg("Search index not configured; askQuestion will answer 503")
		return nil, nil
	}

	var store *search.DetailStore
	if cfg.Search.CacheTTL > 0 {
		s, err := search.NewDetailStore(cfg.Search.CacheTTL)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open movie detail store")
		}
		store = s
	}

	client, err := search.NewClient(&cfg.Search, store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create search client")
	}

	logging.Info().
		Str("index", cfg.Search.Index).
		Str("key", logging.RedactSecret(cfg.Search.Key)).
		Dur("cache_ttl", cfg.Search.CacheTTL).
		Msg("Search client ready")
	return client, store
}
