// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/marquee/internal/breaker"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/search"
)

// apiError is the HTTP form of a domain error.
type apiError struct {
	status  int
	code    string
	message string
}

// classifyRecommendError maps engine and catalog errors to responses.
func classifyRecommendError(err error, movieID int) apiError {
	switch {
	case errors.Is(err, recommend.ErrCatalogUnavailable):
		return apiError{http.StatusServiceUnavailable, models.CodeCatalogUnavailable, "Movie data is not available"}
	case errors.Is(err, catalog.ErrMalformedSource):
		return apiError{http.StatusInternalServerError, models.CodeCatalogLoadFailed, "Movie data could not be loaded"}
	case errors.Is(err, recommend.ErrMovieNotFound):
		return apiError{http.StatusNotFound, models.CodeMovieNotFound, fmt.Sprintf("Movie %d not found", movieID)}
	case errors.Is(err, recommend.ErrNoEmbedding):
		return apiError{http.StatusNotFound, models.CodeEmbeddingNotFound, fmt.Sprintf("Movie %d has no embedding", movieID)}
	case errors.Is(err, recommend.ErrCatalogInconsistent):
		return apiError{http.StatusInternalServerError, models.CodeCatalogInconsistent, "Movie data is inconsistent"}
	case errors.Is(err, recommend.ErrZeroMagnitude),
		errors.Is(err, recommend.ErrDimensionMismatch),
		errors.Is(err, recommend.ErrEmptyVector):
		return apiError{http.StatusInternalServerError, models.CodeSimilarityError, "Similarity could not be computed"}
	case errors.Is(err, context.DeadlineExceeded):
		return apiError{http.StatusGatewayTimeout, models.CodeRequestTimeout, "Request timed out"}
	default:
		return apiError{http.StatusInternalServerError, models.CodeInternal, "Internal server error"}
	}
}

// classifyUpstreamError maps language model and search index errors.
func classifyUpstreamError(err error) apiError {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return apiError{http.StatusServiceUnavailable, models.CodeLLMNotConfigured, "Language model is not configured"}
	case errors.Is(err, search.ErrNotConfigured):
		return apiError{http.StatusServiceUnavailable, models.CodeSearchNotConfigured, "Search index is not configured"}
	case errors.Is(err, search.ErrNotFound):
		return apiError{http.StatusNotFound, models.CodeMovieNotFound, "Movie not found in search index"}
	case errors.Is(err, search.ErrInvalidID):
		return apiError{http.StatusBadRequest, models.CodeInvalidMovieID, "Invalid movie id"}
	case errors.Is(err, breaker.ErrOpen), errors.Is(err, llm.ErrRateLimited):
		return apiError{http.StatusServiceUnavailable, models.CodeUpstreamUnavailable, "Upstream service is temporarily unavailable"}
	case errors.Is(err, context.DeadlineExceeded):
		return apiError{http.StatusGatewayTimeout, models.CodeRequestTimeout, "Upstream request timed out"}
	default:
		return apiError{http.StatusBadGateway, models.CodeUpstreamError, "Upstream service failed"}
	}
}

func writeAPIError(w http.ResponseWriter, r *http.Request, e apiError, err error) {
	respondError(w, r, e.status, e.code, e.message, err)
}
