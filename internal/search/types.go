// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package search

import "github.com/tomtom215/marquee/internal/catalog"

// MovieDetails is a document from the movies search index. Ids are strings
// in the index even though they match catalog ids.
type MovieDetails struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	BackdropPath string               `json:"backdrop_path,omitempty"`
	PosterPath   string               `json:"poster_path,omitempty"`
	ReleaseDate  string               `json:"release_date,omitempty"`
	VoteAverage  float64              `json:"vote_average,omitempty"`
	VoteCount    int                  `json:"vote_count,omitempty"`
	Popularity   float64              `json:"popularity,omitempty"`
	Overview     string               `json:"overview,omitempty"`
	IMDbID       string               `json:"imdb_id,omitempty"`
	Budget       int64                `json:"budget,omitempty"`
	Homepage     string               `json:"homepage,omitempty"`
	Revenue      int64                `json:"revenue,omitempty"`
	Runtime      int                  `json:"runtime,omitempty"`
	Tagline      string               `json:"tagline,omitempty"`
	Genres       []string             `json:"genres,omitempty"`
	Cast         []catalog.CastMember `json:"cast,omitempty"`
	Keywords     []string             `json:"keywords,omitempty"`
	MPAA         string               `json:"mpaa,omitempty"`
	Summaries    []string             `json:"summaries,omitempty"`
	Synopsis     string               `json:"synopsis,omitempty"`
	IMDbScore    float64              `json:"imdb_score,omitempty"`
}
