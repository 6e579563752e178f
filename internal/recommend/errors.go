// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import "errors"

var (
	// ErrCatalogUnavailable means a catalog source is missing. Callers treat
	// it as "feature unavailable" rather than a service failure.
	ErrCatalogUnavailable = errors.New("catalog data unavailable")

	// ErrMovieNotFound means the id is in neither the catalog nor the
	// embeddings.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrNoEmbedding means the movie is known but has no vector.
	ErrNoEmbedding = errors.New("movie has no embedding")

	// ErrCatalogInconsistent means a ranked id has no catalog record.
	ErrCatalogInconsistent = errors.New("embedding and catalog out of sync")

	// ErrInvalidCriteria means a criteria document could not be decoded.
	ErrInvalidCriteria = errors.New("invalid movie criteria")
)
