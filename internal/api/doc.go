// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP layer for Marquee.

Routes:

	GET  /api/movies/{movieID}/similar       ten most similar catalog records
	POST /api/movies/filter                  filter the catalog by a criteria object
	POST /api/movie-chat                     critic conversation; JSON movies or text reply
	GET  /api/movieCriteria?input=           free text to criteria via the language model
	GET  /api/movies/{movieID}/askQuestion   question about one movie, answered as text
	GET  /api/health, /health/live, /health/ready
	GET  /metrics                            Prometheus exposition

Successful movie responses are bare JSON arrays and chat replies are
text/plain. Every error uses the envelope from package models:

	{"status":"error","error":{"code":"MOVIE_NOT_FOUND","message":"..."},"metadata":{...}}

The language model and search index are optional. Endpoints that need a
missing collaborator answer 503 with LLM_NOT_CONFIGURED or
SEARCH_NOT_CONFIGURED.

Middleware order is request id, real IP, access log, recoverer and CORS
globally. API routes add per-IP rate limiting (go-chi/httprate), security
headers, Prometheus instrumentation, a body size limit, gzip and a
request timeout.
*/
package api
