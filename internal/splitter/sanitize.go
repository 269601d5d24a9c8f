// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"strings"
	"unicode"
)

// maxNameLen caps sanitized name segments so deep hierarchies stay within
// filesystem path limits.
const maxNameLen = 80

// invalidChars are characters rejected by at least one common filesystem.
const invalidChars = `\/*?:"<>|`

// SanitizeName rewrites s into a filesystem-safe path segment: invalid
// characters and whitespace become underscores, underscore runs collapse,
// and the result is trimmed and capped at maxNameLen runes. Sanitizing an
// already-sanitized name is a no-op. An empty result becomes "Unnamed".
func SanitizeName(s string) string {
	var b strings.Builder
	prev := false
	for _, r := range s {
		if strings.ContainsRune(invalidChars, r) || r < 0x20 || unicode.IsSpace(r) {
			r = '_'
		}
		if r == '_' && prev {
			continue
		}
		prev = r == '_'
		b.WriteRune(r)
	}

	out := strings.Trim(b.String(), "_")
	if runes := []rune(out); len(runes) > maxNameLen {
		out = strings.Trim(string(runes[:maxNameLen]), "_")
	}
	if out == "" {
		return "Unnamed"
	}
	return out
}
