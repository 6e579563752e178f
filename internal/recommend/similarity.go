// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"
	"sort"

	"github.com/tomtom215/marquee/internal/catalog"
)

// SimilarLimit is the number of similar movies returned per request.
const SimilarLimit = 10

// SimilarityPair is one ranked neighbour of a target movie.
type SimilarityPair struct {
	MovieID    int     `json:"movie_id"`
	Similarity float32 `json:"similarity"`
}

// FindSimilar scores every other embedded movie against movieID.
//
// Records without a vector are skipped. The result keeps the order of
// embeddings; RankSimilar sorts it.
func FindSimilar(movieID int, embeddings []catalog.Embedding) ([]SimilarityPair, error) {
	target := -1
	for i := range embeddings {
		if embeddings[i].MovieID == movieID {
			target = i
			break
		}
	}
	if target < 0 || !embeddings[target].HasVector() {
		return nil, fmt.Errorf("%w: movie %d", ErrNoEmbedding, movieID)
	}

	targetVector := embeddings[target].Vector
	pairs := make([]SimilarityPair, 0, len(embeddings)-1)

	for i := range embeddings {
		e := &embeddings[i]
		if e.MovieID == movieID || !e.HasVector() {
			continue
		}

		sim, err := CosineSimilarity(targetVector, e.Vector)
		if err != nil {
			return nil, fmt.Errorf("compare movie %d with %d: %w", movieID, e.MovieID, err)
		}
		pairs = append(pairs, SimilarityPair{MovieID: e.MovieID, Similarity: sim})
	}

	return pairs, nil
}

// RankSimilar sorts pairs by similarity, highest first. Equal scores keep
// their input order.
func RankSimilar(pairs []SimilarityPair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Similarity > pairs[j].Similarity
	})
}
