// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

const collaboratorDisabled = "disabled"

// Health reports catalog state, engine counters and collaborator breaker
// states.
//
// @Summary Get service health
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.catalog.Stats()
	loaded := stats.Movies > 0 && stats.Embeddings > 0

	status := "healthy"
	if !loaded {
		status = "degraded"
	}

	llmState := collaboratorDisabled
	if h.llm != nil {
		llmState = h.llm.BreakerState()
	}
	searchState := collaboratorDisabled
	if h.search != nil {
		searchState = h.search.BreakerState()
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       h.version,
		Uptime:        time.Since(h.startTime).Round(time.Second).String(),
		CatalogLoaded: loaded,
		Movies:        stats.Movies,
		Embeddings:    stats.Embeddings,
		Collaborators: map[string]string{
			"openai": llmState,
			"search": searchState,
		},
	}
	if h.engine != nil {
		es := h.engine.Stats()
		health.Recommend = &models.EngineHealth{
			SimilarRequests:    es.SimilarRequests,
			FilterRequests:     es.FilterRequests,
			Errors:             es.Errors,
			RankingCacheHits:   es.RankingCacheHits,
			RankingCacheMisses: es.RankingCacheMiss,
			RankingCacheSize:   es.RankingCacheSize,
			RankingCacheLimit:  es.RankingCacheLimit,
		}
	}

	respondEnvelope(w, r, http.StatusOK, health)
}

// HealthLive is the liveness probe. It answers 200 while the process serves.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondEnvelope(w, r, http.StatusOK, map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}

// HealthReady is the readiness probe. The service is ready once both
// catalog sources can be loaded.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ok, err := h.catalog.EnsureLoaded()
	switch {
	case err != nil:
		respondError(w, r, http.StatusServiceUnavailable, models.CodeCatalogLoadFailed, "Movie data could not be loaded", err)
	case !ok:
		respondError(w, r, http.StatusServiceUnavailable, models.CodeCatalogUnavailable, "Movie data is not available", nil)
	default:
		stats := h.catalog.Stats()
		respondEnvelope(w, r, http.StatusOK, map[string]any{
			"ready":      true,
			"movies":     stats.Movies,
			"embeddings": stats.Embeddings,
		})
	}
}
