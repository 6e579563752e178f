// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"
)

// APIResponse is the envelope used for errors and for the health and
// stats endpoints. Movie lists are returned as bare JSON arrays so the
// front end can consume them directly.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "MOVIE_NOT_FOUND", "message": "movie 42 not found"},
//	  "metadata": {"timestamp": "2026-10-17T12:00:00Z", "request_id": "..."}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data,omitempty"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata carries response bookkeeping.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is a machine-readable code plus a human-readable message.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes returned by the API.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeInvalidMovieID      = "INVALID_MOVIE_ID"
	CodeInvalidJSON         = "INVALID_JSON"
	CodeBodyTooLarge        = "REQUEST_TOO_LARGE"
	CodeMovieNotFound       = "MOVIE_NOT_FOUND"
	CodeEmbeddingNotFound   = "EMBEDDING_NOT_FOUND"
	CodeCatalogUnavailable  = "CATALOG_UNAVAILABLE"
	CodeCatalogLoadFailed   = "CATALOG_LOAD_FAILED"
	CodeCatalogInconsistent = "CATALOG_INCONSISTENT"
	CodeSimilarityError     = "SIMILARITY_ERROR"
	CodeNoCriteria          = "NO_CRITERIA"
	CodeLLMNotConfigured    = "LLM_NOT_CONFIGURED"
	CodeSearchNotConfigured = "SEARCH_NOT_CONFIGURED"
	CodeUpstreamError       = "UPSTREAM_ERROR"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeRateLimited         = "RATE_LIMIT_EXCEEDED"
	CodeRequestTimeout      = "REQUEST_TIMEOUT"
	CodeInternal            = "INTERNAL_ERROR"
	CodeRouteNotFound       = "NOT_FOUND"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
)

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status        string            `json:"status"` // "healthy", "degraded" or "unavailable"
	Version       string            `json:"version,omitempty"`
	Uptime        string            `json:"uptime"`
	CatalogLoaded bool              `json:"catalog_loaded"`
	Movies        int               `json:"movies"`
	Embeddings    int               `json:"embeddings"`
	Collaborators map[string]string `json:"collaborators,omitempty"` // name -> "disabled" or breaker state
	Recommend     *EngineHealth     `json:"recommend,omitempty"`
}

// EngineHealth summarizes recommendation engine activity since start.
type EngineHealth struct {
	SimilarRequests    int64 `json:"similar_requests"`
	FilterRequests     int64 `json:"filter_requests"`
	Errors             int64 `json:"errors"`
	RankingCacheHits   int64 `json:"ranking_cache_hits"`
	RankingCacheMisses int64 `json:"ranking_cache_misses"`
	RankingCacheSize   int   `json:"ranking_cache_size"`
	RankingCacheLimit  int   `json:"ranking_cache_limit"`
}
