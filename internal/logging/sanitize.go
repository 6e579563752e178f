// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"strings"
	"unicode"
)

// maxLoggedValueLen caps request-derived values written to the log.
const maxLoggedValueLen = 256

// SanitizeValue makes a request-supplied value safe to log: control
// characters (including CR/LF) become spaces and long values are truncated.
func SanitizeValue(value string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, value)

	if len(cleaned) > maxLoggedValueLen {
		cut := maxLoggedValueLen
		for cut > 0 && !utf8RuneStart(cleaned[cut]) {
			cut--
		}
		return cleaned[:cut] + "..."
	}
	return cleaned
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
