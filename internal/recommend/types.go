// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import "github.com/tomtom215/marquee/internal/catalog"

// Stats reports engine activity.
type Stats struct {
	SimilarRequests   int64         `json:"similar_requests"`
	FilterRequests    int64         `json:"filter_requests"`
	RankingCacheHits  int64         `json:"ranking_cache_hits"`
	RankingCacheMiss  int64         `json:"ranking_cache_misses"`
	RankingCacheSize  int           `json:"ranking_cache_size"`
	RankingCacheLimit int           `json:"ranking_cache_limit"`
	Errors            int64         `json:"errors"`
	Catalog           catalog.Stats `json:"catalog"`
}
