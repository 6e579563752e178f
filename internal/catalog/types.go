// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Movie is a catalog record from the top-rated movies file.
type Movie struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	BackdropPath string       `json:"backdrop_path,omitempty"`
	PosterPath   string       `json:"poster_path,omitempty"`
	ReleaseDate  string       `json:"release_date"` // YYYY-MM-DD
	VoteAverage  float64      `json:"vote_average,omitempty"`
	VoteCount    int          `json:"vote_count,omitempty"`
	Popularity   float64      `json:"popularity,omitempty"`
	Overview     string       `json:"overview,omitempty"`
	IMDbID       string       `json:"imdb_id,omitempty"`
	Budget       int64        `json:"budget,omitempty"`
	Homepage     string       `json:"homepage,omitempty"`
	Revenue      int64        `json:"revenue,omitempty"`
	Runtime      int          `json:"runtime,omitempty"`
	Tagline      string       `json:"tagline,omitempty"`
	Genres       []string     `json:"genres"`
	Cast         []CastMember `json:"cast,omitempty"`
	Keywords     []string     `json:"keywords,omitempty"`
	MPAA         string       `json:"mpaa"`
	Summaries    []string     `json:"summaries,omitempty"`
	Synopsis     string       `json:"synopsis,omitempty"`
	IMDbScore    float64      `json:"imdb_score"`
}

// CastMember is one credited performer.
type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Embedding pairs a movie id with its precomputed vector.
// A nil Vector means the movie has not been embedded yet.
type Embedding struct {
	MovieID int
	Vector  []float32
}

// HasVector reports whether the record carries a usable vector.
func (e Embedding) HasVector() bool {
	return len(e.Vector) > 0
}

// embeddingEnvelope is the on-disk shape written by the ingestion job,
// which stores the raw embeddings API response next to the movie id.
type embeddingEnvelope struct {
	MovieID    *int              `json:"movie_id"`
	Embeddings *embeddingPayload `json:"embeddings"`
}

type embeddingPayload struct {
	Object string          `json:"object,omitempty"`
	Model  string          `json:"model,omitempty"`
	Data   []embeddingData `json:"data"`
}

type embeddingData struct {
	Object    string    `json:"object,omitempty"`
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

// UnmarshalJSON decodes the embeddings API envelope. A null envelope or an
// empty data array yields an absent vector; the first data entry wins.
func (e *Embedding) UnmarshalJSON(data []byte) error {
	var env embeddingEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env.MovieID == nil {
		return fmt.Errorf("embedding record missing movie_id")
	}

	e.MovieID = *env.MovieID
	e.Vector = nil
	if env.Embeddings != nil && len(env.Embeddings.Data) > 0 {
		e.Vector = env.Embeddings.Data[0].Embedding
	}
	return nil
}

// MarshalJSON writes the same envelope UnmarshalJSON reads.
func (e Embedding) MarshalJSON() ([]byte, error) {
	id := e.MovieID
	env := embeddingEnvelope{MovieID: &id}
	if e.Vector != nil {
		env.Embeddings = &embeddingPayload{
			Object: "list",
			Data:   []embeddingData{{Object: "embedding", Embedding: e.Vector}},
		}
	}
	return json.Marshal(env)
}

// Stats reports what the cache currently holds.
type Stats struct {
	Embeddings       int   `json:"embeddings"`
	EmbeddedMovies   int   `json:"embedded_movies"`
	Movies           int   `json:"movies"`
	EmbeddingParses  int64 `json:"embedding_parses"`
	MovieParses      int64 `json:"movie_parses"`
	UnavailableLoads int64 `json:"unavailable_loads"`
}
