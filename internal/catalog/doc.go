// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package catalog holds the in-memory movie catalog: precomputed embedding
// vectors and the top-rated movie records, both read from JSON documents on
// first use.
//
// # Loading
//
// The cache owns two collections, each guarded by its own lock:
//
//	cache := catalog.NewCache(
//	    catalog.NewFileSource("data/embeddings.json"),
//	    catalog.NewFileSource("data/topRatedMovies.json"),
//	    logger,
//	)
//	ok, err := cache.EnsureLoaded()
//	switch {
//	case err != nil:
//	    // malformed or unreadable source, nothing stale was installed
//	case !ok:
//	    // a source is missing, the feature is unavailable for now
//	}
//
// EnsureLoaded checks that both sources exist on every call. A collection
// is parsed only while it is empty, and the check and the install happen
// under the same lock, so concurrent callers parse each document at most
// once.
//
// # Embedding Format
//
// Embedding records keep the shape of the embeddings API response:
//
//	{"movie_id": 42, "embeddings": {"data": [{"embedding": [0.1, 0.2]}]}}
//
// A null envelope or an empty data array means the movie has no vector yet.
package catalog
