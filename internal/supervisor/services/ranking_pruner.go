// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RankingPruner drops expired similarity rankings. Satisfied by
// *recommend.Engine.
type RankingPruner interface {
	PruneRankings() int
}

// RankingPrunerService prunes expired rankings on a fixed interval.
type RankingPrunerService struct {
	pruner   RankingPruner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewRankingPrunerService creates the pruning service. A non-positive
// interval becomes one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRankingPrunerService(pruner RankingPruner, interval time.Duration, logger zerolog.Logger) *RankingPrunerService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RankingPrunerService{
		pruner:   pruner,
		interval: interval,
		logger:   logger.With().Str("service", "ranking-pruner").Logger(),
		name:     "ranking-pruner",
	}
}

// Serve implements suture.Service. It runs until ctx ends.
func (s *RankingPrunerService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.pruner.PruneRankings(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("pruned expired rankings")
			}
		}
	}
}

// String implements fmt.Stringer.
func (s *RankingPrunerService) String() string {
	return s.name
}
