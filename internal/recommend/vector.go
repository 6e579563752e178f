// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"errors"
	"fmt"
	"math"
)

// Vector contract violations. These indicate bad upstream data and are never
// turned into a similarity value.
var (
	ErrEmptyVector       = errors.New("empty vector")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrZeroMagnitude     = errors.New("zero-magnitude vector")
)

// CosineSimilarity returns dot(a,b) / (|a| * |b|).
//
// Sums are accumulated left to right in float64 and converted to float32
// once, so identical inputs always give identical output.
func CosineSimilarity(a, b []float32) (float32, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyVector
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, ErrZeroMagnitude
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB))), nil
}
