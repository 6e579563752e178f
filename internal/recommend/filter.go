// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/catalog"
)

// DateLayout is the release date format used by catalog records and criteria.
const DateLayout = "2006-01-02"

// predicate is one filter stage. It is built once per Filter call so that
// per-criteria work (splitting genres, parsing bounds) is not repeated for
// every record.
type predicate struct {
	name string
	keep func(m *catalog.Movie) bool
}

// Filter returns the movies matching every set field of c, in input order.
// Stages run in a fixed order: genre, mpaa, release date min, release date
// max, score min, score max. Search and NaturalLanguage are not applied.
//
// Dates are fail-closed. A record whose release date does not parse is
// dropped by any date stage, and a bound that does not parse drops every
// record. The input slice is never modified.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Filter(logger zerolog.Logger, c Criteria, movies []catalog.Movie) []catalog.Movie {
	stages := buildPredicates(logger, c)

	out := make([]catalog.Movie, 0, len(movies))
	if len(stages) == 0 {
		return append(out, movies...)
	}

	for i := range movies {
		m := &movies[i]
		kept := true
		for _, p := range stages {
			if !p.keep(m) {
				kept = false
				break
			}
		}
		if kept {
			out = append(out, *m)
		}
	}
	return out
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func buildPredicates(logger zerolog.Logger, c Criteria) []predicate {
	var stages []predicate

	if c.Genre != nil {
		wanted := splitGenres(*c.Genre)
		stages = append(stages, predicate{
			name: "genre",
			keep: func(m *catalog.Movie) bool { return matchesAnyGenre(m.Genres, wanted) },
		})
	}

	if c.MPAA != nil {
		rating := *c.MPAA
		stages = append(stages, predicate{
			name: "mpaa",
			keep: func(m *catalog.Movie) bool { return m.MPAA == rating },
		})
	}

	if c.ReleaseDateMin != nil {
		stages = append(stages, datePredicate(logger, "release_date_min", *c.ReleaseDateMin,
			func(date, bound time.Time) bool { return !date.Before(bound) }))
	}

	if c.ReleaseDateMax != nil {
		stages = append(stages, datePredicate(logger, "release_date_max", *c.ReleaseDateMax,
			func(date, bound time.Time) bool { return !date.After(bound) }))
	}

	if c.ScoreMin != nil {
		floor := *c.ScoreMin
		stages = append(stages, predicate{
			name: "score_min",
			keep: func(m *catalog.Movie) bool { return m.IMDbScore >= floor },
		})
	}

	if c.ScoreMax != nil {
		ceiling := *c.ScoreMax
		stages = append(stages, predicate{
			name: "score_max",
			keep: func(m *catalog.Movie) bool { return m.IMDbScore <= ceiling },
		})
	}

	return stages
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func datePredicate(logger zerolog.Logger, name, raw string, cmp func(date, bound time.Time) bool) predicate {
	bound, err := parseDate(raw)
	if err != nil {
		logger.Warn().
			Str("criterion", name).
			Str("value", raw).
			Err(err).
			Msg("Unparseable date criterion, excluding all movies")
		return predicate{name: name, keep: func(*catalog.Movie) bool { return false }}
	}

	return predicate{
		name: name,
		keep: func(m *catalog.Movie) bool {
			date, err := parseDate(m.ReleaseDate)
			if err != nil {
				logger.Debug().
					Int("movie_id", m.ID).
					Str("release_date", m.ReleaseDate).
					Msg("Excluding movie with unparseable release date")
				return false
			}
			return cmp(date, bound)
		},
	}
}

// parseDate parses a DateLayout date, ignoring surrounding whitespace.
// Criterion bounds and record dates go through the same parse.
func parseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

// splitGenres splits a comma-separated genre list, dropping blank entries.
func splitGenres(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchesAnyGenre(have, wanted []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(strings.TrimSpace(h), w) {
				return true
			}
		}
	}
	return false
}
