// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package logging provides centralized zerolog-based logging for Marquee.

A process-wide logger is configured once from LOG_LEVEL, LOG_FORMAT and
LOG_CALLER and reached through package functions:

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logging.Info().Str("addr", addr).Msg("HTTP server listening")
	logging.Err(err).Msg("Catalog load failed")

Components that own a logger take a zerolog.Logger value, usually built
with WithComponent:

	cache := catalog.NewCache(emb, movies, logging.WithComponent("catalog"))

# Request Scoped Logging

The request ID middleware stores the ID in the request context. Ctx adds it
to every line written for that request:

	logging.Ctx(r.Context()).Warn().Err(err).Msg("Chat completion failed")

# slog Bridge

SlogHandler adapts zerolog to log/slog for the supervisor tree
(sutureslog), so supervisor events land in the same JSON stream.

Always terminate log chains with .Msg() or .Send(); an unterminated event
is never written.
*/
package logging
