// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides net/http middleware for the Marquee API.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request totals, latency and in-flight gauge labelled
    by chi route pattern
  - AccessLog: one structured log line per request
  - SecurityHeaders and MaxBodySize: response hardening and body limits
  - Compression: pooled gzip writers

All middleware uses the func(http.Handler) http.Handler shape so it plugs
straight into chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics and AccessLog read the route pattern after the handler
returns, when chi has finished matching.
*/
package middleware
