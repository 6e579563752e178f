// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"io"
	"net/http"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// SimilarMovies returns the catalog records most similar to a movie.
//
// @Summary Get similar movies
// @Tags Movies
// @Produce json
// @Param movieID path int true "Catalog movie id"
// @Success 200 {array} catalog.Movie
// @Failure 400,404,500,503 {object} models.APIResponse
// @Router /movies/{movieID}/similar [get]
func (h *Handler) SimilarMovies(w http.ResponseWriter, r *http.Request) {
	movieID, ok := parseMovieID(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, models.CodeInvalidMovieID, "Movie id must be a positive integer", nil)
		return
	}

	movies, err := h.engine.Similar(r.Context(), movieID)
	if err != nil {
		writeAPIError(w, r, classifyRecommendError(err, movieID), err)
		return
	}
	respondMovies(w, r, movies)
}

// FilterMovies applies a criteria object from the request body to the
// catalog without involving the language model.
//
// @Summary Filter the catalog by criteria
// @Tags Movies
// @Accept json
// @Produce json
// @Success 200 {array} catalog.Movie
// @Failure 400,413,500,503 {object} models.APIResponse
// @Router /movies/filter [post]
func (h *Handler) FilterMovies(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondBodyError(w, r, "Request body could not be read", err)
		return
	}

	criteria, err := recommend.ParseCriteria(body)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.CodeInvalidJSON, "Request body must be a criteria object", err)
		return
	}

	movies, err := h.engine.FilterCatalog(r.Context(), criteria)
	if err != nil {
		writeAPIError(w, r, classifyRecommendError(err, 0), err)
		return
	}
	respondMovies(w, r, movies)
}
