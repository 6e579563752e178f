// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// respondJSON writes data as a bare JSON document.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondMovies writes a movie list as a JSON array. A nil slice is sent
// as [] rather than null.
func respondMovies(w http.ResponseWriter, r *http.Request, movies []catalog.Movie) {
	if movies == nil {
		movies = []catalog.Movie{}
	}
	respondJSON(w, r, http.StatusOK, movies)
}

// respondText writes a text/plain body.
func respondText(w http.ResponseWriter, r *http.Request, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, text); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write text response")
	}
}

// respondEnvelope wraps data in the success envelope.
func respondEnvelope(w http.ResponseWriter, r *http.Request, status int, data any) {
	respondJSON(w, r, status, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: newMetadata(r),
	})
}

// respondError writes the error envelope. err, when set, is logged but
// never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Str("code", code).Int("status", status).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: newMetadata(r),
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondValidationError writes a 400 VALIDATION_ERROR with field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondJSON(w, r, http.StatusBadRequest, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: newMetadata(r),
		Error: &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}

func newMetadata(r *http.Request) models.Metadata {
	return models.Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
}

// parseMovieID reads the {movieID} path parameter as a positive integer.
func parseMovieID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeJSONBody decodes a request body into dst. Trailing data after the
// first JSON value is rejected.
func decodeJSONBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// respondBodyError answers 413 when the body exceeded MaxBodySize and 400
// INVALID_JSON otherwise.
func respondBodyError(w http.ResponseWriter, r *http.Request, message string, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(w, r, http.StatusRequestEntityTooLarge, models.CodeBodyTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), err)
		return
	}
	respondError(w, r, http.StatusBadRequest, models.CodeInvalidJSON, message, err)
}
