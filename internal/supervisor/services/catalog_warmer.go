// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// CatalogLoader loads the catalog sources once. Satisfied by
// *catalog.Cache.
type CatalogLoader interface {
	EnsureLoaded() (bool, error)
}

// CatalogWarmer loads the catalog at start-up so the first similarity
// request does not pay the parse cost. It runs once and then removes
// itself from the supervisor.
//
// Outcomes:
//   - loaded: logged at info
//   - sources missing: logged at info, the lazy path loads them later
//   - sources malformed: logged at error and not retried
type CatalogWarmer struct {
	loader CatalogLoader
	logger zerolog.Logger
	name   string
}

// NewCatalogWarmer creates the warm-up service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogWarmer(loader CatalogLoader, logger zerolog.Logger) *CatalogWarmer {
	return &CatalogWarmer{
		loader: loader,
		logger: logger.With().Str("service", "catalog-warmer").Logger(),
		name:   "catalog-warmer",
	}
}

// Serve implements suture.Service. It always returns
// suture.ErrDoNotRestart unless ctx ends first.
func (s *CatalogWarmer) Serve(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	ok, err := s.loader.EnsureLoaded()
	switch {
	case err != nil:
		s.logger.Error().Err(err).Msg("catalog warm-up failed; sources are malformed")
	case !ok:
		s.logger.Info().Msg("catalog sources not present; loading on first request")
	default:
		s.logger.Info().Dur("duration", time.Since(start)).Msg("catalog warmed")
	}

	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer.
func (s *CatalogWarmer) String() string {
	return s.name
}
