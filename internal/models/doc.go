// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package models holds the HTTP response shapes shared by the API layer:
// the error envelope, its stable error codes and the health payload.
package models
