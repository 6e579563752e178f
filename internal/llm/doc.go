// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package llm is the chat completions client used by the movie chat, the
criteria endpoint and the ask-a-question endpoint.

It speaks the Azure OpenAI deployment API:

	POST {url}/openai/deployments/{model}/chat/completions?api-version={v}
	api-key: {key}

The wire types keep the tagged shape of the API. A Message may carry text,
tool calls, or both; use Message.Text and Message.Invocations rather than
probing the fields directly.

FilterMoviesTool declares the single function the chat model can call. Its
arguments hold a movie_criteria object that the recommend package decodes.
*/
package llm
