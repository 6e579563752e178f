// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main provides the Marquee HTTP server
//
// @title Marquee API
// @version 1.0
// @description Movie similarity search and criteria-driven recommendations.
// @description
// @description ## Error Responses
// @description
// @description Successful movie responses are bare JSON arrays. Errors use this envelope:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "MOVIE_NOT_FOUND", "message": "Movie 42 not found"},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z", "request_id": "..."}
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Health probes are exempt.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marquee
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api
package main
