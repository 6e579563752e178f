// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package recommend ranks similar movies and filters the catalog by criteria.

# Similarity

CosineSimilarity scores two embedding vectors. FindSimilar scores every
other embedded movie against a target and RankSimilar orders the result,
best first, keeping catalog order for ties. The Engine takes the top
SimilarLimit pairs and resolves them to catalog records:

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, logger)
	movies, err := engine.Similar(ctx, 603)

Rankings are memoised per movie id in an LRU. The catalog is immutable once
loaded, so cached rankings never disagree with it.

# Criteria

Criteria is a partial filter: genre (comma-separated, OR), MPAA rating,
inclusive release date bounds and inclusive IMDb score bounds. Criteria can
be decoded directly with ParseCriteria, or pulled out of a chat response
with ExtractCriteria, which prefers a filter_movies tool call and falls back
to free text. ResolveCriteria turns either outcome into a Criteria.

Filter applies the set fields in a fixed order and preserves catalog order.
Dates fail closed: a record or bound that does not parse as YYYY-MM-DD never
matches a date constraint.

# Errors

Engine methods return sentinel errors for the API layer to map:

	ErrCatalogUnavailable   source file missing
	ErrMovieNotFound        unknown id
	ErrNoEmbedding          known movie without a vector
	ErrCatalogInconsistent  embeddings reference a movie the catalog lacks
*/
package recommend
