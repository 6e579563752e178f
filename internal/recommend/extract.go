// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/metrics"
)

// ExtractionKind says what ExtractCriteria found in a chat response.
type ExtractionKind int

const (
	// ExtractedNothing means no tool call and no text were usable.
	ExtractedNothing ExtractionKind = iota

	// ExtractedCriteria means a tool call carried a movie_criteria object.
	ExtractedCriteria

	// ExtractedText means only free-text content was available.
	ExtractedText
)

// String implements fmt.Stringer.
func (k ExtractionKind) String() string {
	switch k {
	case ExtractedCriteria:
		return "criteria"
	case ExtractedText:
		return "text"
	default:
		return "nothing"
	}
}

// Extraction is the outcome of ExtractCriteria. Criteria is set only for
// ExtractedCriteria and Text only for ExtractedText.
type Extraction struct {
	Kind     ExtractionKind
	Criteria Criteria
	Text     string

	// ToolCallID identifies the invocation the criteria came from.
	ToolCallID string
}

// toolArguments is the argument document of the filter_movies tool.
type toolArguments struct {
	MovieCriteria *Criteria `json:"movie_criteria"`
}

// ExtractCriteria looks for criteria in a chat response. Tool calls are tried
// first, in choice order; the first whose arguments decode to an object with a
// movie_criteria field wins. Otherwise the first non-blank text content is
// returned. Malformed arguments are skipped, so this never fails.
func ExtractCriteria(resp *llm.ChatResponse) Extraction {
	var out Extraction
	if resp != nil {
		out = extractFromChoices(resp.Choices)
	}
	metrics.RecordCriteriaExtraction(out.Kind.String())
	return out
}

func extractFromChoices(choices []llm.Choice) Extraction {
	for _, choice := range choices {
		for _, call := range choice.Message.Invocations() {
			if call.Function.Arguments == "" {
				continue
			}
			var args toolArguments
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				continue
			}
			if args.MovieCriteria == nil {
				continue
			}
			return Extraction{
				Kind:       ExtractedCriteria,
				Criteria:   *args.MovieCriteria,
				ToolCallID: call.ID,
			}
		}
	}

	for _, choice := range choices {
		if text, ok := choice.Message.Text(); ok && strings.TrimSpace(text) != "" {
			return Extraction{Kind: ExtractedText, Text: text}
		}
	}

	return Extraction{Kind: ExtractedNothing}
}

// ResolveCriteria turns an extraction into criteria. Free text is parsed as
// a criteria object; a parse failure means there are no criteria and the
// text should be treated as a conversational reply.
func ResolveCriteria(x Extraction) (Criteria, bool) {
	switch x.Kind {
	case ExtractedCriteria:
		return x.Criteria, true
	case ExtractedText:
		c, err := ParseCriteria([]byte(x.Text))
		if err != nil {
			return Criteria{}, false
		}
		return c, true
	default:
		return Criteria{}, false
	}
}
