// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/search"
	"github.com/tomtom215/marquee/internal/validation"
)

// MovieChat sends the conversation to the critic. When the model answers
// with criteria the filtered catalog is returned as JSON, otherwise its
// reply is returned as plain text.
//
// @Summary Chat with the movie critic
// @Tags Chat
// @Accept json
// @Produce json,plain
// @Success 200 {array} catalog.Movie
// @Failure 400,413,502,503 {object} models.APIResponse
// @Router /movie-chat [post]
func (h *Handler) MovieChat(w http.ResponseWriter, r *http.Request) {
	if h.llm == nil {
		writeAPIError(w, r, classifyUpstreamError(llm.ErrNotConfigured), nil)
		return
	}

	var req MovieChatRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondBodyError(w, r, "Request body must be a JSON object", err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp, err := h.llm.Complete(r.Context(), llm.ChatRequestWithCritic(h.llm.Model(), req.history()))
	if err != nil {
		writeAPIError(w, r, classifyUpstreamError(err), err)
		return
	}

	extraction := recommend.ExtractCriteria(resp)
	logging.Ctx(r.Context()).Debug().
		Str("extraction", extraction.Kind.String()).
		Str("tool_call_id", extraction.ToolCallID).
		Msg("Chat reply classified")

	if criteria, ok := recommend.ResolveCriteria(extraction); ok {
		movies, err := h.engine.FilterCatalog(r.Context(), criteria)
		if err != nil {
			writeAPIError(w, r, classifyRecommendError(err, 0), err)
			return
		}
		respondMovies(w, r, movies)
		return
	}

	// ExtractedNothing falls through with an empty body.
	respondText(w, r, extraction.Text)
}

// MovieCriteria asks the model to turn free text into a criteria object.
//
// @Summary Extract criteria from a request
// @Tags Chat
// @Produce json
// @Param input query string true "Free-text request"
// @Success 200 {object} recommend.Criteria
// @Failure 400,422,502,503 {object} models.APIResponse
// @Router /movieCriteria [get]
func (h *Handler) MovieCriteria(w http.ResponseWriter, r *http.Request) {
	if h.llm == nil {
		writeAPIError(w, r, classifyUpstreamError(llm.ErrNotConfigured), nil)
		return
	}

	query := CriteriaQuery{Input: r.URL.Query().Get("input")}
	if verr := validation.ValidateStruct(&query); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp, err := h.llm.Complete(r.Context(), llm.CriteriaRequest(h.llm.Model(), query.Input))
	if err != nil {
		writeAPIError(w, r, classifyUpstreamError(err), err)
		return
	}

	criteria, ok := recommend.ResolveCriteria(recommend.ExtractCriteria(resp))
	if !ok {
		respondError(w, r, http.StatusUnprocessableEntity, models.CodeNoCriteria, "No movie criteria could be extracted", nil)
		return
	}
	respondJSON(w, r, http.StatusOK, criteria)
}

// AskQuestion answers a question about one movie using its search index
// document as context.
//
// @Summary Ask a question about a movie
// @Tags Chat
// @Produce plain
// @Param movieID path int true "Movie id"
// @Param question query string true "Question"
// @Success 200 {string} string
// @Failure 400,404,502,503 {object} models.APIResponse
// @Router /movies/{movieID}/askQuestion [get]
func (h *Handler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	if h.llm == nil {
		writeAPIError(w, r, classifyUpstreamError(llm.ErrNotConfigured), nil)
		return
	}
	if h.search == nil {
		writeAPIError(w, r, classifyUpstreamError(search.ErrNotConfigured), nil)
		return
	}

	movieID, ok := parseMovieID(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, models.CodeInvalidMovieID, "Movie id must be a positive integer", nil)
		return
	}
	query := QuestionQuery{Question: r.URL.Query().Get("question")}
	if verr := validation.ValidateStruct(&query); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	details, err := h.search.GetMovie(r.Context(), strconv.Itoa(movieID))
	if err != nil {
		writeAPIError(w, r, classifyUpstreamError(err), err)
		return
	}

	req, err := llm.QuestionRequest(h.llm.Model(), query.Question, details)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.CodeInternal, "Question could not be prepared", err)
		return
	}

	resp, err := h.llm.Complete(r.Context(), req)
	if err != nil {
		writeAPIError(w, r, classifyUpstreamError(err), err)
		return
	}

	answer, _ := resp.FirstText()
	respondText(w, r, answer)
}
