// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package llm

import (
	"fmt"

	"github.com/goccy/go-json"
)

// FilterMoviesToolName is the function name the chat model calls once it
// has enough information to filter the catalog.
const FilterMoviesToolName = "filter_movies"

// CriticPrompt is the system prompt for the movie chat.
const CriticPrompt = `You are an expert movie critic. You will be tasked with providing movie recommendations to someone based on criteria they provide.
Ask follow-up questions until you have enough information, then call the filter_movies function with the movie criteria.`

// CriteriaPrompt asks for a bare JSON criteria object.
const CriteriaPrompt = `Please take the user's question to generate an application/json response object with the following format that can be used in an api call:
{
  "search"?: string, // A keyword search query
  "genre"?: string, // One or more comma-separated genres from: Action, Adventure, Animation, Comedy, Crime, Documentary, Drama, Family, Fantasy, History, Horror, Music, Mystery, Romance, Science Fiction, Thriller, War, Western, TV Movie.
  "mpaa"?: string, // An MPAA rating to filter on (PG, PG-13, R, etc.)
  "release_date_min"?: string, // The minimum release date to filter on. Format: YYYY-MM-DD
  "release_date_max"?: string, // The maximum release date to filter on. Format: YYYY-MM-DD
  "score_min"?: number, // The minimum vote/score/rating to filter on. 0-10 scale.
  "score_max"?: number // The maximum vote/score/rating to filter on. 0-10 scale.
}`

// QuestionPrompt builds the system prompt that answers a question about one
// movie. The details are embedded as JSON.
func QuestionPrompt(details any) (string, error) {
	data, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("encode movie context: %w", err)
	}
	return "Please answer the user's question using the provided movie context.\ncontext: " + string(data), nil
}

// FilterMoviesTool declares the filter_movies function. Its single required
// argument is a movie_criteria object.
func FilterMoviesTool() Tool {
	str := map[string]any{"type": "string"}
	num := map[string]any{"type": "number"}

	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        FilterMoviesToolName,
			Description: "Filters the top rated movie catalog using the movie criteria.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"movie_criteria": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"search":           str,
							"genre":            str,
							"mpaa":             str,
							"release_date_min": str,
							"release_date_max": str,
							"score_min":        num,
							"score_max":        num,
							"natural_language": str,
						},
					},
				},
				"required": []string{"movie_criteria"},
			},
		},
	}
}

// ChatRequestWithCritic prepends the critic prompt to a conversation and
// offers the filter_movies tool.
func ChatRequestWithCritic(model string, history []Message) ChatRequest {
	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, NewMessage(RoleSystem, CriticPrompt))
	messages = append(messages, history...)

	return ChatRequest{
		Model:          model,
		Messages:       messages,
		ResponseFormat: &ResponseFormat{Type: FormatText},
		Tools:          []Tool{FilterMoviesTool()},
	}
}

// CriteriaRequest asks the model to turn input into a criteria object.
func CriteriaRequest(model, input string) ChatRequest {
	return ChatRequest{
		Model: model,
		Messages: []Message{
			NewMessage(RoleSystem, CriteriaPrompt),
			NewMessage(RoleUser, input),
		},
		ResponseFormat: &ResponseFormat{Type: FormatJSONObject},
	}
}

// QuestionRequest asks a question about a single movie.
func QuestionRequest(model, question string, details any) (ChatRequest, error) {
	prompt, err := QuestionPrompt(details)
	if err != nil {
		return ChatRequest{}, err
	}
	return ChatRequest{
		Model: model,
		Messages: []Message{
			NewMessage(RoleSystem, prompt),
			NewMessage(RoleUser, question),
		},
	}, nil
}
