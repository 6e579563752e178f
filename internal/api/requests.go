// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"github.com/tomtom215/marquee/internal/llm"
)

// maxRequestBodyLen caps request bodies at 1 MiB.
const maxRequestBodyLen = 1 << 20

// ChatMessage is one turn of the conversation sent by the front end.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"notblank,max=4000"`
}

// MovieChatRequest is the body of POST /api/movie-chat.
type MovieChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,max=50,dive"`
}

// history converts the conversation into language model messages.
func (req *MovieChatRequest) history() []llm.Message {
	out := make([]llm.Message, len(req.Messages))
	for i, m := range req.Messages {
		out[i] = llm.NewMessage(m.Role, m.Content)
	}
	return out
}

// CriteriaQuery holds the query of GET /api/movieCriteria.
type CriteriaQuery struct {
	Input string `json:"input" validate:"notblank,max=1000"`
}

// QuestionQuery holds the query of GET /api/movies/{movieID}/askQuestion.
type QuestionQuery struct {
	Question string `json:"question" validate:"notblank,max=1000"`
}
