// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides a generic, thread-safe LRU with per-entry TTL.

The recommend engine keys it by movie id and stores the ranked top-K
neighbours, so repeated similarity requests for the same movie skip the
full catalog scan. Entries never go stale relative to the catalog because
the catalog is immutable once loaded.

Usage:

	rankings := cache.NewLRU[int, []recommend.SimilarityPair]("similarity", 1024, 10*time.Minute)
	rankings.Add(603, pairs)
	if pairs, ok := rankings.Get(603); ok {
	    // ...
	}
*/
package cache
