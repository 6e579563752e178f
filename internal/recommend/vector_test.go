// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 2}, []float32{-1, -2}, -1},
		{"scaled", []float32{1, 1}, []float32{5, 5}, 1},
		{"45 degrees", []float32{1, 0}, []float32{1, 1}, float32(1 / math.Sqrt2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CosineSimilarity(tt.a, tt.b)
			if err != nil {
				t.Fatalf("CosineSimilarity() error = %v", err)
			}
			if !approxEqual(got, tt.want) {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity_ContractViolations(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float32
		wantErr error
	}{
		{"empty a", nil, []float32{1}, ErrEmptyVector},
		{"empty b", []float32{1}, []float32{}, ErrEmptyVector},
		{"dimension mismatch", []float32{1, 2}, []float32{1, 2, 3}, ErrDimensionMismatch},
		{"zero magnitude", []float32{0, 0}, []float32{1, 1}, ErrZeroMagnitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CosineSimilarity(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CosineSimilarity() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCosineSimilarity_Properties(t *testing.T) {
	vectors := [][]float32{
		{0.12, -0.5, 0.33, 0.9},
		{-0.7, 0.01, 0.2, 0.4},
		{1e-3, 2e-3, -5e-4, 1e-3},
		{100, -200, 300, -400},
	}

	for i, a := range vectors {
		self, err := CosineSimilarity(a, a)
		if err != nil {
			t.Fatalf("CosineSimilarity(v%d, v%d) error = %v", i, i, err)
		}
		if !approxEqual(self, 1) {
			t.Errorf("CosineSimilarity(v%d, v%d) = %v, want 1", i, i, self)
		}

		for j, b := range vectors {
			ab, err := CosineSimilarity(a, b)
			if err != nil {
				t.Fatalf("CosineSimilarity(v%d, v%d) error = %v", i, j, err)
			}
			ba, _ := CosineSimilarity(b, a)
			if ab != ba {
				t.Errorf("CosineSimilarity not symmetric for v%d, v%d: %v != %v", i, j, ab, ba)
			}
			if ab < -1.000001 || ab > 1.000001 {
				t.Errorf("CosineSimilarity(v%d, v%d) = %v, out of [-1, 1]", i, j, ab)
			}

			again, _ := CosineSimilarity(a, b)
			if again != ab {
				t.Errorf("CosineSimilarity(v%d, v%d) not deterministic: %v then %v", i, j, ab, again)
			}
		}
	}
}
