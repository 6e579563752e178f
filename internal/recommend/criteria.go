// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Criteria is a partial filter over the catalog. A nil field places no
// constraint on that dimension.
type Criteria struct {
	// Search is a keyword query carried for external search collaborators.
	Search *string `json:"search,omitempty"`

	// Genre is one or more comma-separated genres, matched with OR.
	Genre *string `json:"genre,omitempty"`

	// MPAA is an exact rating such as "PG-13".
	MPAA *string `json:"mpaa,omitempty"`

	// ReleaseDateMin and ReleaseDateMax are inclusive YYYY-MM-DD bounds.
	ReleaseDateMin *string `json:"release_date_min,omitempty"`
	ReleaseDateMax *string `json:"release_date_max,omitempty"`

	// ScoreMin and ScoreMax are inclusive IMDb score bounds.
	ScoreMin *float64 `json:"score_min,omitempty"`
	ScoreMax *float64 `json:"score_max,omitempty"`

	// NaturalLanguage carries the original request text.
	NaturalLanguage *string `json:"natural_language,omitempty"`
}

// ParseCriteria decodes a criteria object. Unknown fields are ignored and
// missing fields mean "no constraint". Anything other than a JSON object is
// rejected.
func ParseCriteria(data []byte) (Criteria, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Criteria{}, fmt.Errorf("%w: expected a JSON object", ErrInvalidCriteria)
	}

	var c Criteria
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return Criteria{}, fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}
	return c, nil
}

// IsEmpty reports whether no field is set.
func (c Criteria) IsEmpty() bool {
	return c.Search == nil && c.Genre == nil && c.MPAA == nil &&
		c.ReleaseDateMin == nil && c.ReleaseDateMax == nil &&
		c.ScoreMin == nil && c.ScoreMax == nil && c.NaturalLanguage == nil
}

// String renders the set fields for logs.
func (c Criteria) String() string {
	var parts []string
	str := func(name string, v *string) {
		if v != nil {
			parts = append(parts, name+"="+strconv.Quote(*v))
		}
	}
	num := func(name string, v *float64) {
		if v != nil {
			parts = append(parts, name+"="+strconv.FormatFloat(*v, 'g', -1, 64))
		}
	}

	str("search", c.Search)
	str("genre", c.Genre)
	str("mpaa", c.MPAA)
	str("release_date_min", c.ReleaseDateMin)
	str("release_date_max", c.ReleaseDateMax)
	num("score_min", c.ScoreMin)
	num("score_max", c.ScoreMax)
	str("natural_language", c.NaturalLanguage)

	return "{" + strings.Join(parts, " ") + "}"
}
